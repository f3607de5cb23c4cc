package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Controller bundles everything a host needs for one player: the session,
// its loop, the overlay and the avatar selection. Hosts translate their
// input into core.Actions and pass them to Handle.
type Controller struct {
	session  *Session
	loop     *Loop
	overlay  *Overlay
	selector *AvatarSelector
}

// NewController builds a session wired to an overlay and an avatar
// selector. deps.Avatars is replaced by selector.
func NewController(cfg config.RunnerConfig, deps Deps, selector *AvatarSelector) *Controller {
	if selector == nil {
		selector = NewAvatarSelector(AvatarPenguin)
	}
	overlay := NewOverlay()
	deps.Avatars = selector
	deps.Observers = append([]Observer{overlay}, deps.Observers...)

	session := NewSession(cfg, deps)
	return &Controller{
		session:  session,
		loop:     NewLoop(session, cfg.Loop.MaxFrameDelta),
		overlay:  overlay,
		selector: selector,
	}
}

// Handle applies one input action at time now. When a run was started
// the returned ticket must be used to schedule frames.
//
// Jump jumps while running and starts a run otherwise. Restart always
// (re)starts. Avatar cycles the selection, but only outside a run.
func (c *Controller) Handle(a core.Action, now time.Time) (Ticket, bool) {
	switch a {
	case core.ActionJump:
		if c.session.State() == StateRunning {
			c.session.OnJumpRequested()
			return NoTicket, false
		}
		return c.loop.Restart(now), true

	case core.ActionRestart, core.ActionConfirm:
		return c.loop.Restart(now), true

	case core.ActionAvatar, core.ActionDown:
		if c.session.State() != StateRunning {
			c.selector.Cycle(1)
		}
	case core.ActionUp:
		if c.session.State() != StateRunning {
			c.selector.Cycle(-1)
		}
	}
	return NoTicket, false
}

// frameOrder is the order HandleFrame applies actions in. Restarts come
// first so a jump pressed in the same tick lands in the new run.
var frameOrder = []core.Action{
	core.ActionRestart,
	core.ActionConfirm,
	core.ActionJump,
	core.ActionAvatar,
	core.ActionDown,
	core.ActionUp,
}

// HandleFrame applies every action collected during one host tick. It
// returns the last ticket issued, if any.
func (c *Controller) HandleFrame(frame core.InputFrame, now time.Time) (Ticket, bool) {
	ticket, started := NoTicket, false
	for _, a := range frameOrder {
		if !frame.Has(a) {
			continue
		}
		if t, ok := c.Handle(a, now); ok {
			ticket, started = t, true
		}
	}
	return ticket, started
}

// Session returns the controlled session.
func (c *Controller) Session() *Session { return c.session }

// Loop returns the frame loop.
func (c *Controller) Loop() *Loop { return c.loop }

// Overlay returns the overlay observer.
func (c *Controller) Overlay() *Overlay { return c.overlay }

// Selector returns the avatar selection.
func (c *Controller) Selector() *AvatarSelector { return c.selector }

// Draw renders the current frame onto canvas.
func (c *Controller) Draw(canvas Canvas) {
	Draw(canvas, c.session, c.overlay)
}
