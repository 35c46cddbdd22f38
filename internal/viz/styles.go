package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/jointviz/internal/colormap"
)

// Colorbar renders a horizontal legend for g spanning norm, with the
// bounds printed under each end.
func Colorbar(g colormap.Gradient, norm colormap.Norm, width int, label string, th Theme) string {
	if width < 2 {
		width = 2
	}
	var bar strings.Builder
	for k := 0; k < width; k++ {
		c := g.At(float64(k) / float64(width-1))
		bar.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("█"))
	}

	lo, hi := fmt.Sprintf("%.4g", norm.Min), fmt.Sprintf("%.4g", norm.Max)
	gap := width - len(lo) - len(hi)
	if gap < 1 {
		gap = 1
	}
	bounds := lipgloss.NewStyle().Foreground(th.Muted).Render(lo + strings.Repeat(" ", gap) + hi)
	title := lipgloss.NewStyle().Foreground(th.Secondary).Render(label)
	return title + "\n" + bar.String() + "\n" + bounds
}

// MarginalPlot draws one sampled density as an ASCII line chart.
func MarginalPlot(pdf []float64, caption string, width, height int) string {
	if len(pdf) == 0 {
		return ""
	}
	return asciigraph.Plot(pdf,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// GradientText colors each rune of text along g.
func GradientText(text string, g colormap.Gradient) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(g.At(t).Hex())).Render(string(r)))
	}
	return b.String()
}
