package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/jointviz/internal/colormap"
	"github.com/san-kum/jointviz/internal/dist"
	"github.com/san-kum/jointviz/internal/joint"
)

type DistData struct {
	Family string     `json:"family"`
	Name   string     `json:"name"`
	Params []float64  `json:"params"`
	Range  [2]float64 `json:"range"`
}

// SurfaceData is the JSON document for one surface. Z is indexed
// [y][x]; Colors holds one RGBA per x sample.
type SurfaceData struct {
	X       DistData     `json:"x"`
	Y       DistData     `json:"y"`
	Xs      []float64    `json:"xs"`
	Ys      []float64    `json:"ys"`
	PDFX    []float64    `json:"pdf_x"`
	PDFY    []float64    `json:"pdf_y"`
	Z       [][]float64  `json:"z"`
	Colors  [][4]float64 `json:"colors,omitempty"`
	NormMin float64      `json:"norm_min"`
	NormMax float64      `json:"norm_max"`
	Capped  int          `json:"capped,omitempty"`
	Labels  joint.Labels `json:"labels"`
}

func distData(d dist.Dist, iv dist.Interval) DistData {
	return DistData{
		Family: d.Family().String(),
		Name:   d.String(),
		Params: d.Params(),
		Range:  [2]float64{iv.Min, iv.Max},
	}
}

func NewSurfaceData(s *joint.Surface, colors *colormap.ColorArray) SurfaceData {
	data := SurfaceData{
		X:      distData(s.X, s.XRange),
		Y:      distData(s.Y, s.YRange),
		Xs:     s.Xs,
		Ys:     s.Ys,
		PDFX:   s.PDFX,
		PDFY:   s.PDFY,
		Z:      s.Grid(),
		Capped: s.Capped,
		Labels: joint.LabelsFor(s),
	}
	norm := colormap.NewNorm(s.PDFX)
	if colors != nil {
		norm = colors.Norm
		data.Colors = make([][4]float64, len(colors.Columns))
		for i, c := range colors.Columns {
			data.Colors[i] = c.Array()
		}
	}
	data.NormMin, data.NormMax = norm.Min, norm.Max
	return data
}

func WriteJSON(w io.Writer, s *joint.Surface, colors *colormap.ColorArray) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewSurfaceData(s, colors))
}
