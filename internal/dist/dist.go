package dist

import (
	"fmt"
	"math"
)

// A Dist is a validated continuous distribution from the catalog.
//
// The interface is sealed: only the five family types in this package
// implement it.
type Dist interface {
	// Family returns the distribution's family tag.
	Family() Family

	// Params returns the parameters in the order New accepts them.
	Params() []float64

	// PDF returns the probability density at x.
	PDF(x float64) float64

	// Density returns the density at each of xs. The result has
	// the same length as xs and holds no negative values.
	Density(xs []float64) ([]float64, error)

	Mean() float64
	Variance() float64
	String() string

	sealed()
}

// New validates params against f's constraints and returns the
// distribution.
func New(f Family, params ...float64) (Dist, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFamily, int(f))
	}
	names := f.ParamNames()
	if len(params) != len(names) {
		return nil, fmt.Errorf("%w: %s takes %d parameters (%s), got %d",
			ErrInvalidParameter, f, len(names), f.Describe(), len(params))
	}
	for i, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, &ParamError{Family: f, Param: names[i], Value: p, Reason: "must be finite"}
		}
	}

	var d Dist
	var err error
	switch f {
	case Normal:
		d, err = NewNormal(params[0], params[1])
	case Exponential:
		d, err = NewExponential(params[0])
	case Gamma:
		d, err = NewGamma(params[0], params[1])
	case Beta:
		d, err = NewBeta(params[0], params[1])
	case Uniform:
		d, err = NewUniform(params[0], params[1])
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFamily, f)
	}
	if err != nil {
		return nil, err
	}
	// Parameters near the float64 limits can still overflow the
	// evaluation interval.
	if _, err := Range(d); err != nil {
		return nil, err
	}
	return d, nil
}

func positive(f Family, name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return &ParamError{Family: f, Param: name, Value: v, Reason: "must be positive"}
	}
	return nil
}

func finite(f Family, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParamError{Family: f, Param: name, Value: v, Reason: "must be finite"}
	}
	return nil
}

// densityEach evaluates pdf elementwise.
func densityEach(pdf func(float64) float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = pdf(x)
	}
	return out
}
