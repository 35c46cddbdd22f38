package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 2)
	if c.PixelWidth() != 8 || c.PixelHeight() != 8 {
		t.Fatalf("pixel dims = %dx%d", c.PixelWidth(), c.PixelHeight())
	}

	c.Set(0, 0)
	c.Set(1, 3)
	if got := c.Grid[0][0]; got != blank|0x1|0x80 {
		t.Errorf("cell (0,0) = %U", got)
	}
	c.Unset(0, 0)
	if got := c.Grid[0][0]; got != blank|0x80 {
		t.Errorf("after unset cell (0,0) = %U", got)
	}

	// Out of bounds is ignored.
	c.Set(-1, 0)
	c.Set(8, 0)
	c.Set(0, 8)

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != blank {
				t.Fatalf("expected blank canvas after Clear, found %U", r)
			}
		}
	}
}

func TestCanvasDrawLineColor(t *testing.T) {
	c := NewCanvas(5, 1)
	c.DrawLineColor(0, 0, 9, 0, "#ff0000")
	for col := 0; col < 5; col++ {
		if c.Grid[0][col] == blank {
			t.Errorf("cell %d not drawn", col)
		}
		if c.Colors[0][col] != "#ff0000" {
			t.Errorf("cell %d color = %q", col, c.Colors[0][col])
		}
	}

	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 1 || len([]rune(lines[0])) != 5 {
		t.Errorf("String() = %q", c.String())
	}
	if !strings.Contains(c.Render(), string(c.Grid[0])) {
		t.Error("Render should keep a same-colored run together")
	}
}
