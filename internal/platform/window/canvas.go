package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Debug font metrics of ebitenutil.DebugPrintAt.
const (
	glyphWidth = 6
	lineHeight = 16
)

// ellipseStep is the height of the strips an ellipse is built from.
const ellipseStep = 1.0

// Canvas draws onto an ebiten image in pixels. One world unit is one pixel.
type Canvas struct {
	dst *ebiten.Image
}

var _ runner.Canvas = (*Canvas)(nil)

// NewCanvas wraps dst.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// Size returns the image size.
func (c *Canvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// FillRect fills r.
func (c *Canvas) FillRect(r core.Rect, p runner.Paint) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), p.Color.ToRGBA(), false)
}

// FillRoundRect fills r with circular corners of the given radius.
func (c *Canvas) FillRoundRect(r core.Rect, radius float64, p runner.Paint) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	if radius <= 0 {
		c.FillRect(r, p)
		return
	}

	clr := p.Color.ToRGBA()
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	rad := float32(radius)

	vector.DrawFilledRect(c.dst, x+rad, y, w-2*rad, h, clr, true)
	vector.DrawFilledRect(c.dst, x, y+rad, rad, h-2*rad, clr, true)
	vector.DrawFilledRect(c.dst, x+w-rad, y+rad, rad, h-2*rad, clr, true)

	vector.DrawFilledCircle(c.dst, x+rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(c.dst, x+w-rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(c.dst, x+rad, y+h-rad, rad, clr, true)
	vector.DrawFilledCircle(c.dst, x+w-rad, y+h-rad, rad, clr, true)
}

// FillEllipse fills an axis-aligned ellipse. Circles use the vector
// package directly; other ellipses are stacked from horizontal strips.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, p runner.Paint) {
	if rx <= 0 || ry <= 0 {
		return
	}
	clr := p.Color.ToRGBA()
	if rx == ry {
		vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(rx), clr, true)
		return
	}

	for y := -ry; y < ry; y += ellipseStep {
		mid := y + ellipseStep/2
		half := rx * math.Sqrt(math.Max(0, 1-(mid*mid)/(ry*ry)))
		if half <= 0 {
			continue
		}
		vector.DrawFilledRect(c.dst, float32(cx-half), float32(cy+y), float32(2*half), ellipseStep, clr, true)
	}
}

// Text prints s with the debug font. The font is white only.
func (c *Canvas) Text(x, y float64, s string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.dst, s, int(math.Round(x)), int(math.Round(y)))
}

// TextWidth returns the width of s in the debug font.
func (c *Canvas) TextWidth(s string) float64 {
	return float64(len([]rune(s)) * glyphWidth)
}

// LineHeight returns the debug font line height.
func (c *Canvas) LineHeight() float64 {
	return lineHeight
}
