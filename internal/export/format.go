package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/jointviz/internal/colormap"
	"github.com/san-kum/jointviz/internal/joint"
)

var ErrUnknownFormat = errors.New("export: unknown format")

type Format string

const (
	SVG  Format = "svg"
	JSON Format = "json"
	CSV  Format = "csv"
)

var Formats = []Format{SVG, JSON, CSV}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(path[i+1:])
}

// Write encodes s in format f.
func Write(w io.Writer, f Format, s *joint.Surface, colors *colormap.ColorArray, opts SVGOptions) error {
	switch f {
	case SVG:
		return WriteSVG(w, s, colors, opts)
	case JSON:
		return WriteJSON(w, s, colors)
	case CSV:
		return WriteCSV(w, s)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteFile creates path and encodes s into it.
func WriteFile(path string, f Format, s *joint.Surface, colors *colormap.ColorArray, opts SVGOptions) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, f, s, colors, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
