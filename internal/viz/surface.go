package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/jointviz/internal/colormap"
	"github.com/san-kum/jointviz/internal/dist"
	"github.com/san-kum/jointviz/internal/joint"
)

// View configures a terminal rendering of a surface.
type View struct {
	// Width and Height are in character cells.
	Width, Height int
	Camera        *Camera
	Theme         Theme
	Gradient      colormap.Gradient
	// Stride keeps every Stride-th grid line. Zero picks one that
	// leaves about twenty lines per axis.
	Stride int
}

func (v View) stride(s *joint.Surface) int {
	if v.Stride > 0 {
		return v.Stride
	}
	n := s.Rows()
	if s.Cols() > n {
		n = s.Cols()
	}
	if st := n / 20; st > 1 {
		return st
	}
	return 1
}

// DrawSurface renders the colored wireframe of s onto a new canvas.
func DrawSurface(s *joint.Surface, colors *colormap.ColorArray, v View) *Canvas {
	c := NewCanvas(v.Width, v.Height)
	cam := v.Camera
	if cam == nil {
		cam = NewCamera()
	}
	Render3D(c, SurfaceWireframe(s, colors, v.stride(s), v.Theme.Frame), cam)
	return c
}

// RenderSurface returns the full plot: title, surface, axis summary
// and the X-marginal colorbar.
func RenderSurface(s *joint.Surface, colors *colormap.ColorArray, v View) string {
	labels := joint.LabelsFor(s)
	th := v.Theme
	g := v.Gradient
	if g == nil {
		g = colormap.Rainbow{}
	}

	title := lipgloss.NewStyle().Foreground(th.Primary).Bold(true)
	label := lipgloss.NewStyle().Foreground(th.Muted)
	value := lipgloss.NewStyle().Foreground(th.Text)

	var b strings.Builder
	b.WriteString(title.Render(labels.Title) + "\n")
	b.WriteString(label.Render(fmt.Sprintf("%v × %v (independent)", s.X, s.Y)) + "\n\n")
	b.WriteString(DrawSurface(s, colors, v).Render())
	b.WriteString("\n")
	b.WriteString(label.Render(fmt.Sprintf("%-28s", labels.X)) + value.Render(s.XRange.String()) + "\n")
	b.WriteString(label.Render(fmt.Sprintf("%-28s", labels.Y)) + value.Render(s.YRange.String()) + "\n")
	b.WriteString(label.Render(fmt.Sprintf("%-28s", labels.Z)) + value.Render(fmt.Sprintf("peak %.4g", s.Peak())) + "\n\n")
	if colors != nil {
		width := v.Width / 2
		if width < 10 {
			width = 10
		}
		b.WriteString(Colorbar(g, colors.Norm, width, labels.Colorbar, th) + "\n")
	}
	return b.String()
}

// Prepare builds the joint surface of x and y and colors it by the X
// marginal. A constant X marginal yields usable results together with
// an error wrapping colormap.ErrDegenerateColorRange.
func Prepare(x, y dist.Dist, cfg joint.Config, g colormap.Gradient) (*joint.Surface, *colormap.ColorArray, error) {
	s, err := joint.Build(x, y, cfg)
	if err != nil {
		return nil, nil, err
	}
	colors, err := colormap.Colorize(s.PDFX, s.Rows(), g)
	if colors == nil {
		return nil, nil, err
	}
	return s, colors, err
}
