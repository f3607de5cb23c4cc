package runner

import "time"

// Ticket identifies one scheduled frame chain. Hosts attach it to every
// scheduled tick; a tick carrying an old ticket is ignored.
type Ticket uint64

// NoTicket is never active.
const NoTicket Ticket = 0

// Loop drives a Session from host frame callbacks. It measures dt between
// frames, clamps it, and stops itself once the run is over.
type Loop struct {
	session  *Session
	maxDelta float64
	current  Ticket
	issued   Ticket
	last     time.Time
	frames   uint64
}

// NewLoop creates a stopped loop. maxDelta caps a single frame's dt.
func NewLoop(s *Session, maxDelta float64) *Loop {
	return &Loop{session: s, maxDelta: maxDelta}
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

// Start begins a run if the session is idle and returns the ticket to
// schedule frames with. A running loop keeps its ticket; a finished run is
// restarted.
func (l *Loop) Start(now time.Time) Ticket {
	switch l.session.State() {
	case StateRunning:
		if l.current != NoTicket {
			return l.current
		}
		return l.issue(now)
	case StateGameOver:
		return l.Restart(now)
	}
	l.session.Start()
	return l.issue(now)
}

// Restart invalidates any pending frame, then restarts the session.
func (l *Loop) Restart(now time.Time) Ticket {
	l.Stop()
	l.session.Restart()
	return l.issue(now)
}

// Stop invalidates the current ticket. Frames already scheduled with it
// will be ignored when they arrive.
func (l *Loop) Stop() {
	l.current = NoTicket
}

// Active reports whether t is the live ticket.
func (l *Loop) Active(t Ticket) bool {
	return t != NoTicket && t == l.current
}

// Running reports whether frames are being accepted.
func (l *Loop) Running() bool {
	return l.current != NoTicket
}

// Frame runs one frame at wall time now. dt is measured from the previous
// frame. Returns true if the host should schedule another frame.
func (l *Loop) Frame(t Ticket, now time.Time) bool {
	if !l.Active(t) {
		return false
	}
	dt := now.Sub(l.last).Seconds()
	l.last = now
	return l.Advance(t, dt)
}

// Advance runs one frame with an explicit dt. Returns true if the host
// should schedule another frame.
func (l *Loop) Advance(t Ticket, dt float64) bool {
	if !l.Active(t) {
		return false
	}
	l.frames++
	l.session.Step(l.ClampDelta(dt))

	if l.session.State() != StateRunning {
		l.Stop()
		return false
	}
	return true
}

// ClampDelta bounds dt to [0, maxDelta].
func (l *Loop) ClampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if l.maxDelta > 0 && dt > l.maxDelta {
		return l.maxDelta
	}
	return dt
}

// Frames returns the total frames run by this loop.
func (l *Loop) Frames() uint64 {
	return l.frames
}

func (l *Loop) issue(now time.Time) Ticket {
	l.issued++
	l.current = l.issued
	l.last = now
	return l.current
}
