package colormap

import (
	"fmt"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with every channel in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Colorful drops alpha and returns the go-colorful equivalent.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Hex returns the color as #rrggbb.
func (c RGBA) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// Array returns the four channels in R, G, B, A order.
func (c RGBA) Array() [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

func fromColorful(c colorful.Color) RGBA {
	c = c.Clamped()
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// A Gradient maps t in [0, 1] to a color. Values outside [0, 1] are
// clamped. 0 is the cold end and 1 the hot end.
type Gradient interface {
	Name() string
	At(t float64) RGBA
}

// Rainbow is the default gradient: purple at 0 through blue, cyan,
// green and yellow to red at 1.
//
//	r = |2t - 0.5|, g = sin(πt), b = cos(πt/2)
type Rainbow struct{}

func (Rainbow) Name() string { return "rainbow" }

func (Rainbow) At(t float64) RGBA {
	t = clamp01(t)
	return RGBA{
		R: clamp01(math.Abs(2*t - 0.5)),
		G: clamp01(math.Sin(math.Pi * t)),
		B: clamp01(math.Cos(math.Pi * t / 2)),
		A: 1,
	}
}

// Keyframes interpolates evenly spaced colors in CIE L*a*b* space.
type Keyframes struct {
	Label  string
	Colors []colorful.Color
}

func (k Keyframes) Name() string { return k.Label }

func (k Keyframes) At(t float64) RGBA {
	if len(k.Colors) == 0 {
		return RGBA{A: 1}
	}
	t = clamp01(t)
	n := t * float64(len(k.Colors)-1)
	ip, fr := math.Modf(n)
	i := int(ip)
	if i >= len(k.Colors)-1 {
		return fromColorful(k.Colors[len(k.Colors)-1])
	}
	if fr == 0 {
		return fromColorful(k.Colors[i])
	}
	return fromColorful(k.Colors[i].BlendLab(k.Colors[i+1], fr))
}

func hexes(hs ...string) []colorful.Color {
	cs := make([]colorful.Color, len(hs))
	for i, h := range hs {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("colormap: invalid hex color " + h + ": " + err.Error())
		}
		cs[i] = c
	}
	return cs
}

// Perceptually uniform alternatives to Rainbow.
var (
	Viridis = Keyframes{Label: "viridis", Colors: hexes(
		"#440154", "#482374", "#404387", "#345e8d", "#29788e",
		"#20908c", "#22a784", "#44be70", "#79d151", "#bdde26", "#fde725",
	)}
	Inferno = Keyframes{Label: "inferno", Colors: hexes(
		"#000004", "#280b54", "#65156e", "#9f2a63",
		"#d44842", "#f57d15", "#fac127", "#fcffa4",
	)}
	Heat = Keyframes{Label: "heat", Colors: hexes(
		"#4169e1", "#00ced1", "#228b22", "#ffd700", "#ff4500", "#8b0000",
	)}
)

var gradients = map[string]Gradient{
	"rainbow": Rainbow{},
	"viridis": Viridis,
	"inferno": Inferno,
	"heat":    Heat,
}

// ByName returns a registered gradient. The empty name selects Rainbow.
func ByName(name string) (Gradient, error) {
	if name == "" {
		return Rainbow{}, nil
	}
	g, ok := gradients[name]
	if !ok {
		return nil, fmt.Errorf("colormap: unknown gradient %q (available: %v)", name, Names())
	}
	return g, nil
}

// Names lists the registered gradients in sorted order.
func Names() []string {
	names := make([]string, 0, len(gradients))
	for name := range gradients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
