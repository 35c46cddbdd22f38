package dist

import (
	"errors"
	"fmt"
)

// Domain errors for distribution construction and evaluation.
var (
	// ErrInvalidParameter indicates a parameter violating its family's
	// positivity or ordering constraint.
	ErrInvalidParameter = errors.New("dist: invalid parameter")

	// ErrUnsupportedFamily indicates a family selector outside the catalog.
	ErrUnsupportedFamily = errors.New("dist: unsupported family")

	// ErrDegenerateRange indicates an evaluation array whose minimum equals
	// its maximum, so it cannot be rescaled onto [0, 1].
	ErrDegenerateRange = errors.New("dist: degenerate range")
)

// ParamError wraps ErrInvalidParameter with the offending parameter.
type ParamError struct {
	Family Family
	Param  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s %s=%g: %s", ErrInvalidParameter, e.Family, e.Param, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}
