// Package viz provides the terminal drawing layer: a braille pixel
// canvas, distinct-color palette generation, and lipgloss themes.
package viz

import "strings"

// Braille Patterns: 2x4 dots per character cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// NoColor marks a cell that renders with the default style.
const NoColor = -1

// Canvas is a braille-dot raster. Pixel coordinates are sub-pixels:
// the drawable area is (Width*2) x (Height*4). Each character cell
// carries one color index; the last writer wins, so draw trails first
// and rods/bobs on top.
type Canvas struct {
	Width, Height int
	grid          [][]rune
	color         [][]int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		grid:   make([][]rune, h),
		color:  make([][]int, h),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		c.color[i] = make([]int, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
			c.color[i][j] = NoColor
		}
	}
	return c
}

// SubWidth and SubHeight are the drawable extent in sub-pixels.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set lights the sub-pixel at (x, y) with the given color index.
// Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y, color int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= pixelMap[y%4][x%2]
	c.color[row][col] = color
}

// Clear resets every cell to empty with no color.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
			c.color[i][j] = NoColor
		}
	}
}

// DrawLine draws a line in sub-pixel coordinates using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1, color int) {
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
		c.Set(x0, y0, color)
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

// DrawDot lights a sub-pixel and its four neighbors, making bobs
// readable at braille resolution.
func (c *Canvas) DrawDot(x, y, color int) {
	c.Set(x, y, color)
	c.Set(x+1, y, color)
	c.Set(x-1, y, color)
	c.Set(x, y+1, color)
	c.Set(x, y-1, color)
}

// Render produces the canvas as styled lines. colorize is applied to
// runs of consecutive cells sharing a color index; NoColor runs are
// passed through with index NoColor.
func (c *Canvas) Render(colorize func(color int, s string) string) string {
	var b strings.Builder
	for i, row := range c.grid {
		j := 0
		for j < len(row) {
			k := j
			cur := c.color[i][j]
			for k < len(row) && c.color[i][k] == cur {
				k++
			}
			b.WriteString(colorize(cur, string(row[j:k])))
			j = k
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
