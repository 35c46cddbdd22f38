package viz

import (
	"math"
	"sort"

	"github.com/san-kum/jointviz/internal/colormap"
	"github.com/san-kum/jointviz/internal/joint"
)

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Camera manages 3D projection to a 2D plane.
type Camera struct {
	Distance   float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// RotatePoint spins p about the vertical axis, then tilts it about
// the horizontal one.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	return p
}

// Project converts world coordinates to sub-pixel screen coordinates.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
	Color      string
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe                   { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3, c string) { w.Edges = append(w.Edges, Edge{s, e, c}) }

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
	color          string
}

// Render3D draws the wireframe far-to-near so nearer edges win each
// cell's color.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	pw, ph := c.PixelWidth(), c.PixelHeight()
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, pw, ph)
		x2, y2, d2, v2 := cam.Project(e.End, pw, ph)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Color})
		}
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		c.DrawLineColor(e.x1, e.y1, e.x2, e.y2, e.color)
	}
}

// surfaceHeight is the world height of the tallest grid point.
const surfaceHeight = 1.2

// SurfacePoint places grid point (j, i) of s in world space: x and y
// samples span [-1, 1] on the X and Z axes and density scaled by peak
// gives the height.
func SurfacePoint(s *joint.Surface, peak float64, j, i int) Vec3 {
	h := 0.0
	if peak > 0 {
		h = s.At(j, i) / peak * surfaceHeight
	}
	return Vec3{
		X: 2*float64(i)/float64(s.Cols()-1) - 1,
		Y: h - surfaceHeight/2,
		Z: 2*float64(j)/float64(s.Rows()-1) - 1,
	}
}

// SurfaceWireframe lays s out in a [-1, 1] square with density as
// height, keeping every stride-th grid line. Lines take the color of
// the column they belong to; floor edges use frame.
func SurfaceWireframe(s *joint.Surface, colors *colormap.ColorArray, stride int, frame string) *Wireframe {
	w := NewWireframe()
	rows, cols := s.Rows(), s.Cols()
	if rows < 2 || cols < 2 {
		return w
	}
	if stride < 1 {
		stride = 1
	}
	peak := s.Peak()
	pt := func(j, i int) Vec3 { return SurfacePoint(s, peak, j, i) }
	color := func(i int) string {
		if colors == nil || i >= len(colors.Columns) {
			return ""
		}
		return colors.Columns[i].Hex()
	}

	for j := 0; j < rows; j += stride {
		for i := 0; i+1 < cols; i++ {
			w.AddEdge(pt(j, i), pt(j, i+1), color(i))
		}
	}
	if (rows-1)%stride != 0 {
		for i := 0; i+1 < cols; i++ {
			w.AddEdge(pt(rows-1, i), pt(rows-1, i+1), color(i))
		}
	}
	for i := 0; i < cols; i += stride {
		for j := 0; j+1 < rows; j++ {
			w.AddEdge(pt(j, i), pt(j+1, i), color(i))
		}
	}
	if (cols-1)%stride != 0 {
		for j := 0; j+1 < rows; j++ {
			w.AddEdge(pt(j, cols-1), pt(j+1, cols-1), color(cols-1))
		}
	}

	floor := -surfaceHeight / 2
	corners := []Vec3{{-1, floor, -1}, {1, floor, -1}, {1, floor, 1}, {-1, floor, 1}}
	for k := range corners {
		w.AddEdge(corners[k], corners[(k+1)%len(corners)], frame)
	}
	return w
}
