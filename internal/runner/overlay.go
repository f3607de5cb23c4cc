package runner

import "fmt"

// Overlay holds the centered message shown outside of a run.
// It is an Observer and rebuilds its text on every transition.
type Overlay struct {
	visible bool
	title   string
	lines   []string
}

// NewOverlay creates an overlay showing the start prompt.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.showIdle()
	return o
}

// SessionChanged updates the overlay for the new state.
func (o *Overlay) SessionChanged(sum Summary) {
	switch sum.To {
	case StateIdle:
		o.showIdle()
	case StateRunning:
		o.visible = false
		o.title = ""
		o.lines = nil
	case StateGameOver:
		o.visible = true
		o.title = "GAME OVER"
		o.lines = []string{
			fmt.Sprintf("Score %d   Best %d", sum.Score, sum.HighScore),
		}
		if sum.NewRecord {
			o.lines = append(o.lines, "New record!")
		}
		o.lines = append(o.lines, "Space/R: run again   Q: quit")
	}
}

func (o *Overlay) showIdle() {
	o.visible = true
	o.title = "RUNNER"
	o.lines = []string{
		"Space: start / jump",
		"Tab: change avatar   Q: quit",
	}
}

// Visible reports whether the overlay should be drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Title returns the overlay heading.
func (o *Overlay) Title() string { return o.title }

// Lines returns the overlay body lines.
func (o *Overlay) Lines() []string { return o.lines }
