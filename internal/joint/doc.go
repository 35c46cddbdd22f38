// Package joint samples two distributions over their plotting ranges
// and assembles their joint density surface.
//
// # Independence
//
// The surface is the outer product of the two marginal densities,
// Z[j][i] = f_Y(y_j) · f_X(x_i). That is the true joint density only
// when X and Y are independent. No dependence structure is modeled:
// the product is a deliberate stand-in, not an estimate of a general
// bivariate density.
package joint
