package dist

import (
	"fmt"
	"strconv"
	"strings"
)

// Family selects one of the supported distribution shapes.
type Family int

// The numeric values match the selectors shown to users (1..5).
const (
	Normal Family = iota + 1
	Exponential
	Gamma
	Beta
	Uniform
)

// Families lists the catalog in selector order.
var Families = []Family{Normal, Exponential, Gamma, Beta, Uniform}

var familyNames = map[Family]string{
	Normal:      "Normal",
	Exponential: "Exponential",
	Gamma:       "Gamma",
	Beta:        "Beta",
	Uniform:     "Uniform",
}

var familyAliases = map[string]Family{
	"normal":      Normal,
	"gaussian":    Normal,
	"exponential": Exponential,
	"exp":         Exponential,
	"gamma":       Gamma,
	"beta":        Beta,
	"uniform":     Uniform,
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether f is one of the catalog families.
func (f Family) Valid() bool {
	_, ok := familyNames[f]
	return ok
}

// ParamNames returns the ordered parameter names New expects for f.
func (f Family) ParamNames() []string {
	switch f {
	case Normal:
		return []string{"mean", "stddev"}
	case Exponential:
		return []string{"scale"}
	case Gamma:
		return []string{"shape", "scale"}
	case Beta:
		return []string{"alpha", "beta"}
	case Uniform:
		return []string{"lower", "upper"}
	}
	return nil
}

// Describe returns a short human description of the family's parameters.
func (f Family) Describe() string {
	switch f {
	case Normal:
		return "mean, stddev > 0"
	case Exponential:
		return "scale > 0 (1/rate)"
	case Gamma:
		return "shape > 0, scale > 0"
	case Beta:
		return "alpha > 0, beta > 0"
	case Uniform:
		return "lower, upper > lower"
	}
	return ""
}

// FromSelector maps the menu selectors 1..5 onto families.
func FromSelector(n int) (Family, error) {
	f := Family(n)
	if !f.Valid() {
		return 0, fmt.Errorf("%w: selector %d (want 1-%d)", ErrUnsupportedFamily, n, len(Families))
	}
	return f, nil
}

// ParseFamily accepts either a selector number or a family name.
func ParseFamily(s string) (Family, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		return FromSelector(n)
	}
	if f, ok := familyAliases[s]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFamily, s)
}
