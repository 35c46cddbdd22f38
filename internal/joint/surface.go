package joint

import (
	"fmt"
	"math"

	"github.com/san-kum/jointviz/internal/dist"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultResolution is the number of samples taken along each axis.
const DefaultResolution = 100

type Config struct {
	// Resolution is the number of samples per axis. Zero means
	// DefaultResolution.
	Resolution int
}

func DefaultConfig() Config {
	return Config{Resolution: DefaultResolution}
}

// Surface is the sampled joint density of two independent marginals.
//
// Z has len(Ys) rows and len(Xs) columns; Z.At(j, i) is
// PDFY[j] * PDFX[i].
type Surface struct {
	X, Y           dist.Dist
	XRange, YRange dist.Interval
	Xs, Ys         []float64
	PDFX, PDFY     []float64
	Z              *mat.Dense

	// Capped counts marginal samples whose density was infinite
	// (a Beta endpoint with a parameter below 1) and was replaced by
	// the largest finite sample of the same marginal.
	Capped int
}

// Build samples x and y over their ranges and forms the joint density
// grid under the independence assumption. Every call recomputes the
// whole grid.
func Build(x, y dist.Dist, cfg Config) (*Surface, error) {
	n := cfg.Resolution
	if n == 0 {
		n = DefaultResolution
	}
	if n < 2 {
		return nil, fmt.Errorf("joint: resolution %d, need at least 2", n)
	}

	xr, xs, pdfX, cx, err := sample(x, n)
	if err != nil {
		return nil, fmt.Errorf("joint: x marginal %v: %w", x, err)
	}
	yr, ys, pdfY, cy, err := sample(y, n)
	if err != nil {
		return nil, fmt.Errorf("joint: y marginal %v: %w", y, err)
	}

	var z mat.Dense
	z.Outer(1, mat.NewVecDense(len(pdfY), pdfY), mat.NewVecDense(len(pdfX), pdfX))

	return &Surface{
		X: x, Y: y,
		XRange: xr, YRange: yr,
		Xs: xs, Ys: ys,
		PDFX: pdfX, PDFY: pdfY,
		Z:      &z,
		Capped: cx + cy,
	}, nil
}

func sample(d dist.Dist, n int) (dist.Interval, []float64, []float64, int, error) {
	iv, err := dist.Range(d)
	if err != nil {
		return dist.Interval{}, nil, nil, 0, err
	}
	xs := iv.Linspace(n)
	pdf, err := d.Density(xs)
	if err != nil {
		return dist.Interval{}, nil, nil, 0, err
	}
	capped := capInfinite(pdf)
	return iv, xs, pdf, capped, nil
}

// capInfinite replaces +Inf samples with the largest finite sample so
// the outer product never produces Inf or 0·Inf.
func capInfinite(pdf []float64) int {
	peak, capped := 0.0, 0
	for _, v := range pdf {
		if math.IsInf(v, 1) {
			capped++
		} else if v > peak {
			peak = v
		}
	}
	if capped == 0 {
		return 0
	}
	for i, v := range pdf {
		if math.IsInf(v, 1) {
			pdf[i] = peak
		}
	}
	return capped
}

// Rows returns the number of y samples.
func (s *Surface) Rows() int { return len(s.Ys) }

// Cols returns the number of x samples.
func (s *Surface) Cols() int { return len(s.Xs) }

// At returns the joint density at row j (y sample) and column i
// (x sample).
func (s *Surface) At(j, i int) float64 { return s.Z.At(j, i) }

// Grid copies Z into a row-major slice of slices.
func (s *Surface) Grid() [][]float64 {
	r, c := s.Z.Dims()
	out := make([][]float64, r)
	for j := range out {
		out[j] = mat.Row(make([]float64, c), j, s.Z)
	}
	return out
}

// Peak returns the maximum joint density on the grid.
func (s *Surface) Peak() float64 {
	return floats.Max(s.PDFY) * floats.Max(s.PDFX)
}

// Mass approximates the integral of Z over the sampled rectangle with
// the trapezoidal rule. Values well below 1 mean the ranges clip a
// noticeable share of the distribution.
func (s *Surface) Mass() float64 {
	return trapz(s.Xs, s.PDFX) * trapz(s.Ys, s.PDFY)
}

func trapz(xs, ys []float64) float64 {
	sum := 0.0
	for i := 1; i < len(xs); i++ {
		sum += (xs[i] - xs[i-1]) * (ys[i] + ys[i-1]) / 2
	}
	return sum
}
