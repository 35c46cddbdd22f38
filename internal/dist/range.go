package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Interval is a finite evaluation domain [Min, Max] with Min < Max.
type Interval struct {
	Min, Max float64
}

func (iv Interval) Width() float64 { return iv.Max - iv.Min }

func (iv Interval) Contains(x float64) bool { return x >= iv.Min && x <= iv.Max }

func (iv Interval) String() string { return fmt.Sprintf("[%g, %g]", iv.Min, iv.Max) }

// Linspace returns n evenly spaced samples covering iv, including both
// endpoints. n must be at least 2.
func (iv Interval) Linspace(n int) []float64 {
	if n < 2 {
		panic("dist: Linspace needs at least 2 samples")
	}
	xs := floats.Span(make([]float64, n), iv.Min, iv.Max)
	// Pin the upper endpoint so closed supports keep their edge sample.
	xs[n-1] = iv.Max
	return xs
}

// Multipliers for the range heuristic.
const (
	normalSigmas      = 4
	exponentialScales = 5
	gammaSmallShape   = 10
	gammaLeftSigmas   = 3
	gammaRightSigmas  = 5
)

// Range returns the interval over which d is sampled for plotting. It
// covers the practically relevant part of d's support: the exact
// support when it is finite, otherwise a family-specific multiple of
// the spread.
//
// Range fails with ErrInvalidParameter when the parameters push the
// interval, or its width, past the float64 range, or collapse it to a
// point.
func Range(d Dist) (Interval, error) {
	iv, err := heuristicRange(d)
	if err != nil {
		return Interval{}, err
	}
	if !iv.usable() {
		return Interval{}, fmt.Errorf("%w: %v: evaluation range %v is not a finite interval", ErrInvalidParameter, d, iv)
	}
	return iv, nil
}

// usable reports whether iv is finite, non-empty and has a finite width.
func (iv Interval) usable() bool {
	return !math.IsInf(iv.Min, 0) && !math.IsInf(iv.Max, 0) &&
		iv.Min < iv.Max && !math.IsInf(iv.Width(), 0)
}

func heuristicRange(d Dist) (Interval, error) {
	switch d := d.(type) {
	case NormalDist:
		mu, sigma := d.Mean(), d.StdDev()
		return Interval{mu - normalSigmas*sigma, mu + normalSigmas*sigma}, nil
	case ExponentialDist:
		return Interval{0, exponentialScales * d.Scale()}, nil
	case GammaDist:
		if d.Shape() < 1 {
			// Mass piles up against zero with a long tail, so mean
			// and spread say little about where to stop.
			return Interval{0, gammaSmallShape * d.Scale()}, nil
		}
		mean := d.Mean()
		std := math.Sqrt(d.Shape()) * d.Scale()
		return Interval{math.Max(0, mean-gammaLeftSigmas*std), mean + gammaRightSigmas*std}, nil
	case BetaDist:
		return Interval{0, 1}, nil
	case UniformDist:
		return Interval{d.Lower(), d.Upper()}, nil
	}
	return Interval{}, fmt.Errorf("%w: %T", ErrUnsupportedFamily, d)
}
