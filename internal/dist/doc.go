// Package dist implements the catalog of one-dimensional continuous
// distributions that jointviz can plot.
//
// The catalog is closed. Exactly five families exist:
//
//   - [Normal]: mean and standard deviation
//   - [Exponential]: scale (1/rate)
//   - [Gamma]: shape and scale
//   - [Beta]: alpha and beta
//   - [Uniform]: lower and upper bound
//
// Every [Dist] is validated when it is constructed and is immutable
// afterwards, so a Dist value in hand always has legal parameters.
//
// # Example
//
//	d, err := dist.New(dist.Gamma, 2, 1.5)
//	if err != nil {
//	    return err
//	}
//	iv, _ := dist.Range(d)
//	ys, _ := d.Density(iv.Linspace(100))
package dist
