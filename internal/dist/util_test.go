package dist

import "math"

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 1e-9*math.Max(1, math.Abs(expect))
}

func mustNew(f Family, params ...float64) Dist {
	d, err := New(f, params...)
	if err != nil {
		panic(err)
	}
	return d
}
