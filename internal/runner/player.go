// Package runner implements the endless runner simulation: a player that
// jumps over obstacles scrolling in from the right while the world speeds up.
// It has no terminal or window dependency; hosts feed it frames and draw it
// through the Canvas interface.
package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the runner character. Only its vertical position changes.
type Player struct {
	x, y         float64 // Top-left corner
	width        float64
	height       float64
	velocity     float64 // Vertical velocity, negative = up
	grounded     bool
	groundY      float64
	hasGround    bool
	gravity      float64
	jumpVelocity float64
}

// NewPlayer creates a player from the configured size and physics.
func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{
		x:            cfg.X,
		width:        cfg.Width,
		height:       cfg.Height,
		gravity:      cfg.Gravity,
		jumpVelocity: cfg.JumpVelocity,
		grounded:     true,
	}
}

// Reset puts the player back at the run start: resting on the ground, not moving.
func (p *Player) Reset() {
	p.velocity = 0
	p.grounded = true
	p.y = p.groundY - p.height
}

// SetGroundLine records the y-coordinate of the walking surface.
// The first call places the player on it. Later calls (layout changes) keep
// a grounded player on the ground and clamp an airborne one above it.
func (p *Player) SetGroundLine(y float64) {
	first := !p.hasGround
	p.groundY = y
	p.hasGround = true

	if first || p.grounded {
		p.y = y - p.height
		p.velocity = 0
		p.grounded = true
		return
	}
	p.clamp()
}

// Jump starts a jump if the player is on the ground.
// Returns false without effect while airborne.
func (p *Player) Jump() bool {
	if !p.grounded {
		return false
	}
	p.velocity = -p.jumpVelocity
	p.grounded = false
	return true
}

// Update integrates gravity over dt seconds and clamps to the ground line.
func (p *Player) Update(dt float64) {
	p.velocity += p.gravity * dt
	p.y += p.velocity * dt
	p.clamp()
}

// clamp snaps the bottom edge to the ground once it reaches or passes it.
func (p *Player) clamp() {
	if p.y+p.height >= p.groundY {
		p.y = p.groundY - p.height
		p.velocity = 0
		p.grounded = true
	}
}

// Bounds returns the player's collision rectangle.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.x, p.y, p.width, p.height)
}

// Grounded reports whether the player is standing on the ground.
func (p *Player) Grounded() bool {
	return p.grounded
}

// Velocity returns the current vertical velocity.
func (p *Player) Velocity() float64 {
	return p.velocity
}

// GroundLine returns the ground y-coordinate the player rests on.
func (p *Player) GroundLine() float64 {
	return p.groundY
}

// Altitude returns how far the bottom edge is above the ground line.
func (p *Player) Altitude() float64 {
	return p.groundY - (p.y + p.height)
}
