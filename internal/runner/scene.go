package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Scene paints used by Draw.
var (
	paintGround   = Paint{Color: core.ColorGray, Glyph: '░'}
	paintSurface  = Paint{Color: core.ColorWhite, Glyph: '═'}
	paintShadow   = Paint{Color: core.ColorGray, Glyph: '▬'}
	paintObstacle = Paint{Color: core.ColorBrightGreen, Glyph: '▓'}
	paintPanel    = Paint{Color: core.ColorDefault, Glyph: ' '}
)

const (
	surfaceThickness = 2
	obstacleRadius   = 4
	playerRadius     = 6
	hudMargin        = 8
)

// Draw renders the session onto c: ground, shadows, obstacles, player,
// HUD, then the overlay if visible. It only reads session state.
func Draw(c Canvas, s *Session, ov *Overlay) {
	w, h := c.Size()
	ground := s.GroundLine()

	c.FillRect(core.NewRect(0, ground, w, h-ground), paintGround)
	c.FillRect(core.NewRect(0, ground, w, surfaceThickness), paintSurface)

	for _, o := range s.Obstacles() {
		drawShadow(c, o.X+o.W/2, ground, o.W*0.6, 0)
	}
	for _, o := range s.Obstacles() {
		c.FillRoundRect(o.Bounds(), obstacleRadius, paintObstacle)
	}

	p := s.Player()
	b := p.Bounds()
	cx, _ := b.Center()
	drawShadow(c, cx, ground, b.W*0.6, p.Altitude())

	av := s.Avatar().Info()
	c.FillRoundRect(b, playerRadius, Paint{Color: av.Color, Glyph: av.Glyph})

	drawHUD(c, s, w)

	if ov != nil && ov.Visible() {
		drawOverlay(c, ov, w, h)
	}
}

// drawShadow draws a ground shadow that shrinks as its owner rises.
func drawShadow(c Canvas, cx, ground, rx, altitude float64) {
	scale := core.Remap(altitude, 0, 200, 1, 0.3)
	c.FillEllipse(cx, ground, rx*scale, 3*scale+1, paintShadow)
}

func drawHUD(c Canvas, s *Session, w float64) {
	lh := c.LineHeight()

	left := fmt.Sprintf("Score %05d", s.DisplayScore())
	c.Text(hudMargin, hudMargin, left, core.ColorBrightWhite)

	right := fmt.Sprintf("Best %05d", s.BestScore())
	c.Text(w-hudMargin-c.TextWidth(right), hudMargin, right, core.ColorBrightYellow)

	info := fmt.Sprintf("Speed %d  %s", int(s.Speed()), s.Avatar())
	c.Text(hudMargin, hudMargin+lh, info, core.ColorGray)
}

func drawOverlay(c Canvas, ov *Overlay, w, h float64) {
	lh := c.LineHeight()
	lines := append([]string{ov.Title(), ""}, ov.Lines()...)

	width := 0.0
	for _, l := range lines {
		width = max(width, c.TextWidth(l))
	}
	pad := lh
	panel := core.NewRect(
		(w-width)/2-pad,
		(h-lh*float64(len(lines)))/2-pad,
		width+2*pad,
		lh*float64(len(lines))+2*pad,
	)
	c.FillRoundRect(panel, 8, paintPanel)

	y := panel.Y + pad
	for i, l := range lines {
		col := core.ColorWhite
		if i == 0 {
			col = core.ColorBrightYellow
		}
		c.Text((w-c.TextWidth(l))/2, y, l, col)
		y += lh
	}
}
