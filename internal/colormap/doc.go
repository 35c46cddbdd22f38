// Package colormap normalizes density samples and maps them through a
// continuous color gradient.
//
// Gradients run from a cold end at 0 to a hot end at 1. [Colorize]
// colors a surface by one marginal: column i of the result carries the
// color for the i-th marginal sample and every row repeats it.
package colormap
