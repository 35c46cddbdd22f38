package joint_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/jointviz/internal/dist"
	"github.com/san-kum/jointviz/internal/joint"
	"gonum.org/v1/gonum/floats"
)

func mustNew(f dist.Family, params ...float64) dist.Dist {
	d, err := dist.New(f, params...)
	Expect(err).NotTo(HaveOccurred())
	return d
}

var _ = Describe("Build", func() {
	Context("standard normal against unit uniform", func() {
		var s *joint.Surface

		BeforeEach(func() {
			var err error
			s, err = joint.Build(mustNew(dist.Normal, 0, 1), mustNew(dist.Uniform, 0, 1), joint.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
		})

		It("uses the heuristic ranges", func() {
			Expect(s.XRange).To(Equal(dist.Interval{Min: -4, Max: 4}))
			Expect(s.YRange).To(Equal(dist.Interval{Min: 0, Max: 1}))
		})

		It("samples a 100x100 grid", func() {
			Expect(s.Xs).To(HaveLen(100))
			Expect(s.Ys).To(HaveLen(100))
			r, c := s.Z.Dims()
			Expect(r).To(Equal(100))
			Expect(c).To(Equal(100))
			Expect(s.Rows()).To(Equal(100))
			Expect(s.Cols()).To(Equal(100))
		})

		It("evaluates the marginals", func() {
			Expect(s.PDFX[50]).To(BeNumerically("~", 0.3989, 1e-3))
			Expect(s.PDFY[0]).To(BeNumerically("~", 1.0, 1e-12))
			Expect(s.At(0, 50)).To(BeNumerically("~", s.PDFY[0]*s.PDFX[50], 1e-15))
		})

		It("is the outer product of the marginals", func() {
			for j := range s.Ys {
				for i := range s.Xs {
					Expect(s.At(j, i)).To(Equal(s.PDFY[j] * s.PDFX[i]))
				}
			}
		})

		It("copies the grid row-major", func() {
			g := s.Grid()
			Expect(g).To(HaveLen(100))
			Expect(g[7][42]).To(Equal(s.At(7, 42)))
		})

		It("holds almost all of the probability mass", func() {
			Expect(s.Mass()).To(BeNumerically("~", 1.0, 1e-3))
			Expect(s.Peak()).To(BeNumerically(">=", s.At(0, 50)))
		})

		It("labels the plot after both families", func() {
			l := joint.LabelsFor(s)
			Expect(l.Title).To(Equal("Joint Distribution of Normal and Uniform"))
			Expect(l.X).To(Equal("X: Normal Distribution"))
			Expect(l.Y).To(Equal("Y: Uniform Distribution"))
			Expect(l.Z).To(Equal("Joint Probability Density"))
			Expect(l.Colorbar).To(Equal("Normal Density"))
		})
	})

	It("never produces negative or non-finite densities", func() {
		pairs := [][2]dist.Dist{
			{mustNew(dist.Exponential, 2), mustNew(dist.Gamma, 0.5, 1)},
			{mustNew(dist.Gamma, 4, 0.5), mustNew(dist.Beta, 2, 5)},
			{mustNew(dist.Beta, 0.5, 0.5), mustNew(dist.Normal, -3, 0.2)},
		}
		for _, p := range pairs {
			s, err := joint.Build(p[0], p[1], joint.Config{})
			Expect(err).NotTo(HaveOccurred())
			for _, row := range s.Grid() {
				for _, v := range row {
					Expect(v).To(BeNumerically(">=", 0))
					Expect(math.IsInf(v, 0) || math.IsNaN(v)).To(BeFalse())
				}
			}
		}
	})

	It("caps infinite Beta endpoints at the largest finite sample", func() {
		s, err := joint.Build(mustNew(dist.Beta, 0.5, 0.5), mustNew(dist.Uniform, 0, 1), joint.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Capped).To(Equal(2))
		Expect(s.PDFX[0]).To(Equal(s.PDFX[99]))
		Expect(s.PDFX[0]).To(BeNumerically(">=", s.PDFX[1]))
	})

	It("caps the diverging Gamma origin so it holds the hottest column", func() {
		s, err := joint.Build(mustNew(dist.Gamma, 0.5, 1), mustNew(dist.Uniform, 0, 1), joint.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Capped).To(Equal(1))
		Expect(math.IsInf(s.PDFX[0], 0)).To(BeFalse())
		Expect(s.PDFX[0]).To(Equal(floats.Max(s.PDFX)))
		Expect(s.PDFX[0]).To(BeNumerically(">=", s.PDFX[1]))
	})

	It("samples the shape-one Gamma origin at 1/scale", func() {
		s, err := joint.Build(mustNew(dist.Gamma, 1, 2), mustNew(dist.Uniform, 0, 1), joint.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Capped).To(BeZero())
		Expect(s.Xs[0]).To(BeZero())
		Expect(s.PDFX[0]).To(Equal(0.5))
	})

	It("honours a custom resolution", func() {
		s, err := joint.Build(mustNew(dist.Exponential, 2), mustNew(dist.Normal, 0, 1), joint.Config{Resolution: 25})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Xs).To(HaveLen(25))
		Expect(s.PDFX[0]).To(BeNumerically("~", 0.5, 1e-12))
		Expect(s.XRange.Max).To(Equal(10.0))
	})

	It("rejects a resolution below two", func() {
		_, err := joint.Build(mustNew(dist.Normal, 0, 1), mustNew(dist.Normal, 0, 1), joint.Config{Resolution: 1})
		Expect(err).To(HaveOccurred())
	})

	It("rebuilds fresh grids on every call", func() {
		x, y := mustNew(dist.Normal, 0, 1), mustNew(dist.Gamma, 2, 1)
		a, err := joint.Build(x, y, joint.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		b, err := joint.Build(x, y, joint.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		a.Z.Set(0, 0, -1)
		Expect(b.At(0, 0)).NotTo(Equal(-1.0))
	})

	It("surfaces unsupported marginals", func() {
		_, err := joint.Build(nil, mustNew(dist.Normal, 0, 1), joint.DefaultConfig())
		Expect(errors.Is(err, dist.ErrUnsupportedFamily)).To(BeTrue())
	})
})
