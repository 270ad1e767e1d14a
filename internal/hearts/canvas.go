// Package hearts animates the decorative heart particles: the floating
// background field, the drifting mini hearts and the love button burst.
//
// Particles live in pixel space, using the same magnitudes as a browser
// canvas, and are projected onto a grid of terminal cells when drawn.
package hearts

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Terminal cell size in pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Cell is one drawn glyph.
type Cell struct {
	Glyph rune
	// Hue in degrees, Alpha in [0, 1].
	Hue   float64
	Alpha float64
	Bold  bool
}

// Color is the cell's pink blended onto a black background at its alpha.
func (c Cell) Color() string {
	fg := colorful.Hsl(c.Hue, 0.8, 0.7)
	return colorful.Color{}.BlendRgb(fg, clamp01(c.Alpha)).Clamped().Hex()
}

// Canvas is a grid of cells with pixel-space plotting.
type Canvas struct {
	W, H  int
	cells []Cell
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	return &Canvas{W: w, H: h, cells: make([]Cell, w*h)}
}

// PixelSize is the canvas size in pixels.
func (c *Canvas) PixelSize() (float64, float64) {
	return float64(c.W * CellWidth), float64(c.H * CellHeight)
}

// Plot draws cell at the pixel position, ignoring points off the canvas. A
// later plot over an existing glyph wins only if it is more opaque.
func (c *Canvas) Plot(px, py float64, cell Cell) {
	if px < 0 || py < 0 {
		return
	}
	x, y := int(px/CellWidth), int(py/CellHeight)
	if x >= c.W || y >= c.H {
		return
	}
	i := y*c.W + x
	if old := c.cells[i]; old.Glyph != 0 && old.Alpha >= cell.Alpha {
		return
	}
	c.cells[i] = cell
}

func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return Cell{}
	}
	return c.cells[y*c.W+x]
}

func (c *Canvas) Clear() {
	clear(c.cells)
}

// Lines renders the canvas row by row; empty cells become spaces and drawn
// cells go through paint.
func (c *Canvas) Lines(paint func(Cell) string) []string {
	out := make([]string, 0, c.H)
	var b strings.Builder
	for y := 0; y < c.H; y++ {
		b.Reset()
		for x := 0; x < c.W; x++ {
			cell := c.cells[y*c.W+x]
			switch {
			case cell.Glyph == 0:
				b.WriteByte(' ')
			case paint == nil:
				b.WriteRune(cell.Glyph)
			default:
				b.WriteString(paint(cell))
			}
		}
		out = append(out, b.String())
	}
	return out
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
