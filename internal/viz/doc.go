// Package viz draws joint density surfaces in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [RunInteractive]: pick the X and Y families, enter their parameters,
//     then inspect the surface
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Camera] and [Wireframe]: perspective projection of the surface grid
//   - [Colorbar] and [MarginalPlot]: legends and 1-D density plots
//
// # Key Bindings
//
//	x/X - Tilt the surface
//	y/Y - Spin the surface
//	+/- - Zoom
//	t   - Cycle color themes
//	g   - Cycle gradients
//	r   - Start over with new distributions
package viz
