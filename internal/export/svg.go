package export

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/san-kum/jointviz/internal/colormap"
	"github.com/san-kum/jointviz/internal/config"
	"github.com/san-kum/jointviz/internal/joint"
	"github.com/san-kum/jointviz/internal/viz"
)

// SVGOptions controls the rendered image.
type SVGOptions struct {
	Width, Height int
	Camera        *viz.Camera
	Gradient      colormap.Gradient
	Background    string
	// Stride merges Stride x Stride grid cells into one quad.
	Stride int
}

func DefaultSVGOptions() SVGOptions {
	cam := viz.NewCamera()
	cam.RotX, cam.RotY = config.DefaultRotX, config.DefaultRotY
	return SVGOptions{
		Width:      800,
		Height:     640,
		Camera:     cam,
		Gradient:   colormap.Rainbow{},
		Background: "#0a0a0a",
		Stride:     1,
	}
}

const (
	svgTitleBand    = 40
	svgColorbarBand = 70
	svgColorSteps   = 64
)

type quad struct {
	pts   [4][2]int
	depth float64
	fill  string
}

// SurfaceToSVG renders s as depth-sorted filled quads with a title and
// a colorbar for the X marginal.
func SurfaceToSVG(s *joint.Surface, colors *colormap.ColorArray, opts SVGOptions) string {
	var sb strings.Builder
	WriteSVG(&sb, s, colors, opts)
	return sb.String()
}

func WriteSVG(w io.Writer, s *joint.Surface, colors *colormap.ColorArray, opts SVGOptions) error {
	def := DefaultSVGOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.Camera == nil {
		opts.Camera = def.Camera
	}
	if opts.Gradient == nil {
		opts.Gradient = def.Gradient
	}
	if opts.Background == "" {
		opts.Background = def.Background
	}
	if opts.Stride < 1 {
		opts.Stride = 1
	}
	labels := joint.LabelsFor(s)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<text x="%d" y="26" fill="#e0e0e0" font-family="monospace" font-size="16" text-anchor="middle">%s</text>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background, opts.Width/2, html.EscapeString(labels.Title)))

	plotH := opts.Height - svgTitleBand - svgColorbarBand
	sb.WriteString(fmt.Sprintf("<g transform=\"translate(0,%d)\" stroke-width=\"0.3\">\n", svgTitleBand))
	for _, q := range surfaceQuads(s, colors, opts.Camera, opts.Width, plotH, opts.Stride) {
		sb.WriteString(fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d %d,%d" fill="%s" stroke="%s"/>
`, q.pts[0][0], q.pts[0][1], q.pts[1][0], q.pts[1][1], q.pts[2][0], q.pts[2][1], q.pts[3][0], q.pts[3][1], q.fill, q.fill))
	}
	sb.WriteString("</g>\n")

	writeSVGAxes(&sb, labels, opts.Height-svgColorbarBand)
	if colors != nil {
		writeSVGColorbar(&sb, opts.Gradient, colors.Norm, labels.Colorbar, opts.Width, opts.Height)
	}
	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// surfaceQuads projects each grid cell to screen space and orders the
// result far-to-near.
func surfaceQuads(s *joint.Surface, colors *colormap.ColorArray, cam *viz.Camera, w, h, stride int) []quad {
	rows, cols := s.Rows(), s.Cols()
	if rows < 2 || cols < 2 {
		return nil
	}
	peak := s.Peak()
	next := func(k, n int) int {
		if k+stride > n-1 {
			return n - 1
		}
		return k + stride
	}

	quads := make([]quad, 0, (rows/stride+1)*(cols/stride+1))
	for j := 0; j < rows-1; j = next(j, rows) {
		j2 := next(j, rows)
		for i := 0; i < cols-1; i = next(i, cols) {
			i2 := next(i, cols)
			var q quad
			for k, c := range [4][2]int{{j, i}, {j, i2}, {j2, i2}, {j2, i}} {
				x, y, d, _ := cam.Project(viz.SurfacePoint(s, peak, c[0], c[1]), w, h)
				q.pts[k] = [2]int{x, y}
				q.depth += d / 4
			}
			q.fill = "#808080"
			if colors != nil && i < len(colors.Columns) {
				q.fill = colors.Columns[i].Hex()
			}
			quads = append(quads, q)
		}
	}
	sort.SliceStable(quads, func(a, b int) bool { return quads[a].depth < quads[b].depth })
	return quads
}

func writeSVGAxes(sb *strings.Builder, labels joint.Labels, y int) {
	for k, text := range []string{labels.X, labels.Y, labels.Z} {
		sb.WriteString(fmt.Sprintf(`<text x="12" y="%d" fill="#a0a0a0" font-family="monospace" font-size="12">%s</text>
`, y-48+16*k, html.EscapeString(text)))
	}
}

func writeSVGColorbar(sb *strings.Builder, g colormap.Gradient, norm colormap.Norm, label string, width, height int) {
	barW := width / 2
	x0, y0 := width-barW-20, height-svgColorbarBand+24
	step := float64(barW) / svgColorSteps
	for k := 0; k < svgColorSteps; k++ {
		c := g.At(float64(k) / float64(svgColorSteps-1))
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%d" width="%.1f" height="14" fill="%s"/>
`, float64(x0)+float64(k)*step, y0, step+0.5, c.Hex()))
	}
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#e0e0e0" font-family="monospace" font-size="12">%s</text>
<text x="%d" y="%d" fill="#a0a0a0" font-family="monospace" font-size="11">%.4g</text>
<text x="%d" y="%d" fill="#a0a0a0" font-family="monospace" font-size="11" text-anchor="end">%.4g</text>
`, x0, y0-6, html.EscapeString(label), x0, y0+28, norm.Min, x0+barW, y0+28, norm.Max))
}
