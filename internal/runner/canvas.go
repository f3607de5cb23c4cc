package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Paint describes how a shape is filled. Pixel canvases use Color only;
// cell canvases also use Glyph.
type Paint struct {
	Color core.Color
	Glyph rune
}

// Canvas is a drawing surface in world units with y growing downward.
// Hosts implement it for the terminal and for a desktop window.
type Canvas interface {
	Size() (w, h float64)
	FillRect(r core.Rect, p Paint)
	FillRoundRect(r core.Rect, radius float64, p Paint)
	FillEllipse(cx, cy, rx, ry float64, p Paint)
	Text(x, y float64, s string, c core.Color)
	TextWidth(s string) float64
	LineHeight() float64
}
