package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a Gaussian with mean Mu and standard deviation Sigma.
type NormalDist struct {
	impl distuv.Normal
}

// NewNormal returns a normal distribution. stddev must be positive.
func NewNormal(mean, stddev float64) (NormalDist, error) {
	if err := finite(Normal, "mean", mean); err != nil {
		return NormalDist{}, err
	}
	if err := positive(Normal, "stddev", stddev); err != nil {
		return NormalDist{}, err
	}
	return NormalDist{impl: distuv.Normal{Mu: mean, Sigma: stddev}}, nil
}

func (d NormalDist) Family() Family        { return Normal }
func (d NormalDist) Params() []float64     { return []float64{d.impl.Mu, d.impl.Sigma} }
func (d NormalDist) PDF(x float64) float64 { return d.impl.Prob(x) }
func (d NormalDist) Mean() float64         { return d.impl.Mu }
func (d NormalDist) StdDev() float64       { return d.impl.Sigma }
func (d NormalDist) Variance() float64     { return d.impl.Sigma * d.impl.Sigma }
func (d NormalDist) String() string {
	return fmt.Sprintf("Normal(μ=%g, σ=%g)", d.impl.Mu, d.impl.Sigma)
}
func (d NormalDist) sealed() {}

func (d NormalDist) Density(xs []float64) ([]float64, error) {
	return densityEach(d.PDF, xs), nil
}

// ExponentialDist is an exponential distribution parameterized by its
// scale, the reciprocal of the rate.
type ExponentialDist struct {
	scale float64
	impl  distuv.Exponential
}

// NewExponential returns an exponential distribution. scale must be
// positive.
func NewExponential(scale float64) (ExponentialDist, error) {
	if err := positive(Exponential, "scale", scale); err != nil {
		return ExponentialDist{}, err
	}
	return ExponentialDist{scale: scale, impl: distuv.Exponential{Rate: 1 / scale}}, nil
}

func (d ExponentialDist) Family() Family    { return Exponential }
func (d ExponentialDist) Params() []float64 { return []float64{d.scale} }
func (d ExponentialDist) Scale() float64    { return d.scale }
func (d ExponentialDist) Mean() float64     { return d.scale }
func (d ExponentialDist) Variance() float64 { return d.scale * d.scale }
func (d ExponentialDist) String() string    { return fmt.Sprintf("Exponential(scale=%g)", d.scale) }
func (d ExponentialDist) sealed()           {}

// PDF is zero for x < 0 and 1/scale at x == 0.
func (d ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.impl.Prob(x)
}

func (d ExponentialDist) Density(xs []float64) ([]float64, error) {
	return densityEach(d.PDF, xs), nil
}

// GammaDist is a gamma distribution with the given shape (k) and
// scale (θ).
type GammaDist struct {
	shape, scale float64
	impl         distuv.Gamma
}

// NewGamma returns a gamma distribution. shape and scale must both be
// positive.
func NewGamma(shape, scale float64) (GammaDist, error) {
	if err := positive(Gamma, "shape", shape); err != nil {
		return GammaDist{}, err
	}
	if err := positive(Gamma, "scale", scale); err != nil {
		return GammaDist{}, err
	}
	// distuv parameterizes by rate.
	return GammaDist{shape: shape, scale: scale, impl: distuv.Gamma{Alpha: shape, Beta: 1 / scale}}, nil
}

func (d GammaDist) Family() Family    { return Gamma }
func (d GammaDist) Params() []float64 { return []float64{d.shape, d.scale} }
func (d GammaDist) Shape() float64    { return d.shape }
func (d GammaDist) Scale() float64    { return d.scale }
func (d GammaDist) Mean() float64     { return d.shape * d.scale }
func (d GammaDist) Variance() float64 { return d.shape * d.scale * d.scale }
func (d GammaDist) String() string {
	return fmt.Sprintf("Gamma(shape=%g, scale=%g)", d.shape, d.scale)
}
func (d GammaDist) sealed() {}

// PDF is zero for x < 0. At x == 0 it is +Inf for shape < 1, 1/scale
// for shape == 1 and 0 otherwise.
func (d GammaDist) PDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 0:
		return d.impl.Prob(x)
	case d.shape < 1:
		return math.Inf(1)
	case d.shape == 1:
		return 1 / d.scale
	}
	return 0
}

func (d GammaDist) Density(xs []float64) ([]float64, error) {
	return densityEach(d.PDF, xs), nil
}

// BetaDist is a beta distribution on [0, 1].
type BetaDist struct {
	impl distuv.Beta
}

// NewBeta returns a beta distribution. alpha and beta must both be
// positive.
func NewBeta(alpha, beta float64) (BetaDist, error) {
	if err := positive(Beta, "alpha", alpha); err != nil {
		return BetaDist{}, err
	}
	if err := positive(Beta, "beta", beta); err != nil {
		return BetaDist{}, err
	}
	return BetaDist{impl: distuv.Beta{Alpha: alpha, Beta: beta}}, nil
}

func (d BetaDist) Family() Family    { return Beta }
func (d BetaDist) Params() []float64 { return []float64{d.impl.Alpha, d.impl.Beta} }
func (d BetaDist) Alpha() float64    { return d.impl.Alpha }
func (d BetaDist) Beta() float64     { return d.impl.Beta }
func (d BetaDist) Mean() float64     { return d.impl.Mean() }
func (d BetaDist) Variance() float64 { return d.impl.Variance() }
func (d BetaDist) String() string {
	return fmt.Sprintf("Beta(α=%g, β=%g)", d.impl.Alpha, d.impl.Beta)
}
func (d BetaDist) sealed() {}

// PDF evaluates the standard beta density at x with no rescaling. It
// is zero outside [0, 1] and +Inf at an endpoint where the matching
// parameter is below 1.
func (d BetaDist) PDF(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	return d.impl.Prob(x)
}

// Density first maps xs affinely onto [0, 1] using the array's own
// minimum and maximum, then evaluates the standard beta density. The
// result therefore reflects the beta shape across whatever interval
// xs spans. It fails with ErrDegenerateRange when xs is constant.
func (d BetaDist) Density(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return []float64{}, nil
	}
	lo, hi := floats.Min(xs), floats.Max(xs)
	if hi == lo {
		return nil, fmt.Errorf("%w: beta evaluation array is constant at %g", ErrDegenerateRange, lo)
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = d.PDF((x - lo) / (hi - lo))
	}
	return out, nil
}

// UniformDist is the continuous uniform distribution on [lower, upper].
type UniformDist struct {
	impl distuv.Uniform
}

// NewUniform returns a uniform distribution. upper must exceed lower.
func NewUniform(lower, upper float64) (UniformDist, error) {
	if err := finite(Uniform, "lower", lower); err != nil {
		return UniformDist{}, err
	}
	if err := finite(Uniform, "upper", upper); err != nil {
		return UniformDist{}, err
	}
	if !(upper > lower) {
		return UniformDist{}, &ParamError{Family: Uniform, Param: "upper", Value: upper,
			Reason: fmt.Sprintf("must be greater than lower bound %g", lower)}
	}
	return UniformDist{impl: distuv.Uniform{Min: lower, Max: upper}}, nil
}

func (d UniformDist) Family() Family        { return Uniform }
func (d UniformDist) Params() []float64     { return []float64{d.impl.Min, d.impl.Max} }
func (d UniformDist) Lower() float64        { return d.impl.Min }
func (d UniformDist) Upper() float64        { return d.impl.Max }
func (d UniformDist) PDF(x float64) float64 { return d.impl.Prob(x) }
func (d UniformDist) Mean() float64         { return d.impl.Mean() }
func (d UniformDist) Variance() float64     { return d.impl.Variance() }
func (d UniformDist) String() string {
	return fmt.Sprintf("Uniform(%g, %g)", d.impl.Min, d.impl.Max)
}
func (d UniformDist) sealed() {}

func (d UniformDist) Density(xs []float64) ([]float64, error) {
	return densityEach(d.PDF, xs), nil
}
