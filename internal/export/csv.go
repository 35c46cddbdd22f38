package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/jointviz/internal/joint"
)

// WriteCSV writes one x,y,density row per grid point, y-major.
func WriteCSV(w io.Writer, s *joint.Surface) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "density"}); err != nil {
		return err
	}
	row := make([]string, 3)
	for j, y := range s.Ys {
		row[1] = strconv.FormatFloat(y, 'g', -1, 64)
		for i, x := range s.Xs {
			row[0] = strconv.FormatFloat(x, 'g', -1, 64)
			row[2] = strconv.FormatFloat(s.At(j, i), 'g', -1, 64)
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
