package colormap

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrDegenerateColorRange indicates marginal densities that are
// constant, so normalization has no spread to work with.
var ErrDegenerateColorRange = errors.New("colormap: degenerate color range")

// Midpoint is the normalized position used for every sample when the
// color range is degenerate.
const Midpoint = 0.5

// Norm linearly maps [Min, Max] onto [0, 1].
type Norm struct {
	Min, Max float64
}

// NewNorm returns the normalization spanning vs.
func NewNorm(vs []float64) Norm {
	if len(vs) == 0 {
		return Norm{}
	}
	return Norm{Min: floats.Min(vs), Max: floats.Max(vs)}
}

// Degenerate reports whether the range has zero width.
func (n Norm) Degenerate() bool { return n.Max == n.Min }

// Apply returns v's position in the range, clamped to [0, 1]. A
// degenerate range maps everything to Midpoint.
func (n Norm) Apply(v float64) float64 {
	if n.Degenerate() {
		return Midpoint
	}
	return clamp01((v - n.Min) / (n.Max - n.Min))
}

// ColorArray is a rows×cols grid of colors in which every row is the
// same: column i holds the color for marginal sample i.
type ColorArray struct {
	Rows, Cols int

	// Columns holds one color per column.
	Columns []RGBA

	// Positions holds each column's normalized value.
	Positions []float64

	// Norm records the bounds used, for legends.
	Norm Norm
}

// At returns the color at row j, column i.
func (a *ColorArray) At(j, i int) RGBA {
	return a.Columns[i]
}

// Grid materializes the full rows×cols×4 array.
func (a *ColorArray) Grid() [][][4]float64 {
	out := make([][][4]float64, a.Rows)
	for j := range out {
		row := make([][4]float64, a.Cols)
		for i, c := range a.Columns {
			row[i] = c.Array()
		}
		out[j] = row
	}
	return out
}

// Colorize normalizes pdf over its own minimum and maximum and maps
// each sample through g. The column colors are broadcast across rows.
//
// When pdf is constant, Colorize still returns a usable array with
// every column at the gradient's Midpoint, together with an error
// wrapping ErrDegenerateColorRange. Callers decide whether to treat
// that as fatal.
func Colorize(pdf []float64, rows int, g Gradient) (*ColorArray, error) {
	if len(pdf) == 0 {
		return nil, fmt.Errorf("colormap: no samples to colorize")
	}
	if rows < 1 {
		return nil, fmt.Errorf("colormap: rows %d, need at least 1", rows)
	}
	if g == nil {
		g = Rainbow{}
	}

	norm := NewNorm(pdf)
	arr := &ColorArray{
		Rows:      rows,
		Cols:      len(pdf),
		Columns:   make([]RGBA, len(pdf)),
		Positions: make([]float64, len(pdf)),
		Norm:      norm,
	}
	for i, v := range pdf {
		t := norm.Apply(v)
		arr.Positions[i] = t
		arr.Columns[i] = g.At(t)
	}

	if norm.Degenerate() {
		return arr, fmt.Errorf("%w: density is constant at %g", ErrDegenerateColorRange, norm.Min)
	}
	return arr, nil
}
