package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille pixel canvas. Each character cell holds 2x4
// sub-pixels and one foreground color.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	// Colors holds a #rrggbb foreground per cell; "" uses the
	// terminal default.
	Colors [][]string
}

// NewCanvas returns a blank w×h canvas. Negative sizes are treated
// as zero.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]string, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
	}
	c.Clear()
	return c
}

// PixelWidth is the canvas width in sub-pixels.
func (c *Canvas) PixelWidth() int { return c.Width * 2 }

// PixelHeight is the canvas height in sub-pixels.
func (c *Canvas) PixelHeight() int { return c.Height * 4 }

// cell returns the character cell holding sub-pixel (x, y).
func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Set turns on the sub-pixel at (x, y). The canvas is
// (Width*2) x (Height*4) sub-pixels.
func (c *Canvas) Set(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// SetColor turns on the sub-pixel and recolors its cell.
func (c *Canvas) SetColor(x, y int, hex string) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if hex != "" {
		c.Colors[row][col] = hex
	}
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] &= ^rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = ""
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.DrawLineColor(x0, y0, x1, y1, "")
}

// DrawLineColor draws a line whose cells take the given color.
func (c *Canvas) DrawLineColor(x0, y0, x1, y1 int, hex string) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.SetColor(x0, y0, hex)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// String returns the canvas without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the canvas with each run of same-colored cells styled
// as one span.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Colors[i][j] == c.Colors[i][start] {
				continue
			}
			run := string(row[start:j])
			if hex := c.Colors[i][start]; hex != "" {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(run)
			}
			b.WriteString(run)
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
