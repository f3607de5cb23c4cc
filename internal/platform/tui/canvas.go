package tui

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// defaultFill is used when a paint carries no glyph.
const defaultFill = '█'

// Canvas draws world-unit shapes onto a cell screen. Each cell covers
// cellW x cellH world units; a cell is painted when a shape covers any
// part of it.
type Canvas struct {
	screen *core.Screen
	cellW  float64
	cellH  float64
}

var _ runner.Canvas = (*Canvas)(nil)

// NewCanvas wraps screen with the given cell size in world units.
func NewCanvas(screen *core.Screen, cellW, cellH float64) *Canvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Canvas{screen: screen, cellW: cellW, cellH: cellH}
}

// Size returns the screen size in world units.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.screen.Width()) * c.cellW, float64(c.screen.Height()) * c.cellH
}

// cells converts r to a clipped half-open cell range.
func (c *Canvas) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = max(int(math.Floor(r.X/c.cellW)), 0)
	y0 = max(int(math.Floor(r.Y/c.cellH)), 0)
	x1 = min(int(math.Ceil(r.Right()/c.cellW)), c.screen.Width())
	y1 = min(int(math.Ceil(r.Bottom()/c.cellH)), c.screen.Height())
	return x0, y0, x1, y1
}

func glyph(p runner.Paint) rune {
	if p.Glyph == 0 {
		return defaultFill
	}
	return p.Glyph
}

// FillRect paints every cell r touches.
func (c *Canvas) FillRect(r core.Rect, p runner.Paint) {
	x0, y0, x1, y1 := c.cells(r)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	if y1-y0 == 1 {
		c.screen.DrawHLine(x0, y0, x1-x0, glyph(p), p.Color)
		return
	}
	c.screen.FillArea(x0, y0, x1-x0, y1-y0, glyph(p), p.Color)
}

// FillRoundRect paints r, dropping the corner cells when the radius is at
// least half a cell and the shape is large enough to keep its form.
// Blank panels get a box outline.
func (c *Canvas) FillRoundRect(r core.Rect, radius float64, p runner.Paint) {
	x0, y0, x1, y1 := c.cells(r)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	w, h := x1-x0, y1-y0
	c.screen.FillArea(x0, y0, w, h, glyph(p), p.Color)

	if p.Glyph == ' ' && w >= 2 && h >= 2 {
		c.screen.DrawBox(x0, y0, w, h, core.ColorGray)
		return
	}
	if radius >= c.cellW/2 && w >= 4 && h >= 3 {
		for _, pt := range [][2]int{{x0, y0}, {x1 - 1, y0}, {x0, y1 - 1}, {x1 - 1, y1 - 1}} {
			c.screen.SetCell(pt[0], pt[1], ' ', core.ColorDefault)
		}
	}
}

// FillEllipse paints the cells whose centers fall inside the ellipse.
// An ellipse smaller than a cell still paints the cell holding its center.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, p runner.Paint) {
	if rx <= 0 || ry <= 0 {
		return
	}
	x0, y0, x1, y1 := c.cells(core.NewRect(cx-rx, cy-ry, 2*rx, 2*ry))
	painted := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := ((float64(x)+0.5)*c.cellW - cx) / rx
			dy := ((float64(y)+0.5)*c.cellH - cy) / ry
			if dx*dx+dy*dy <= 1 {
				c.screen.SetCell(x, y, glyph(p), p.Color)
				painted = true
			}
		}
	}
	if painted {
		return
	}

	// Thin ellipses: paint the row holding the center across the width.
	row := int(math.Floor(cy / c.cellH))
	for x := x0; x < x1; x++ {
		c.screen.SetCell(x, row, glyph(p), p.Color)
	}
}

// Text writes s starting at the cell containing (x, y).
func (c *Canvas) Text(x, y float64, s string, col core.Color) {
	c.screen.DrawTextColor(int(math.Round(x/c.cellW)), int(math.Floor(y/c.cellH)), s, col)
}

// TextWidth returns the width of s in world units: one cell per rune.
func (c *Canvas) TextWidth(s string) float64 {
	return float64(len([]rune(s))) * c.cellW
}

// LineHeight returns one cell row in world units.
func (c *Canvas) LineHeight() float64 {
	return c.cellH
}
