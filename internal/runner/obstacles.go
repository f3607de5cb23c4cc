package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is a ground block the player must jump over.
// Its size is fixed at spawn; only X changes afterwards.
type Obstacle struct {
	X, Y float64
	W, H float64
}

// Bounds returns the collision rectangle for this obstacle.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// ObstacleField handles spawning, movement, and removal of obstacles.
type ObstacleField struct {
	obstacles []Obstacle // Spawn order
	timer     float64    // Seconds since the last spawn
	rng       *core.Random
	cfg       config.ObstacleConfig
	speed     config.SpeedConfig
}

// NewObstacleField creates an empty field drawing sizes from rng.
func NewObstacleField(cfg config.ObstacleConfig, speed config.SpeedConfig, rng *core.Random) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg,
		speed:     speed,
	}
}

// Reset clears all obstacles and zeroes the spawn timer.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
	f.timer = 0
}

// Interval returns the spawn interval for the given world speed.
// Speed is clamped to [base, max] and mapped inversely onto
// [maxInterval, minInterval]: faster worlds spawn more often.
func (f *ObstacleField) Interval(worldSpeed float64) float64 {
	return core.Remap(worldSpeed,
		f.speed.Base, f.speed.Max,
		f.cfg.MaxInterval, f.cfg.MinInterval)
}

// Update spawns, moves and culls obstacles for one frame.
// groundLine and viewportWidth come from the host layout.
func (f *ObstacleField) Update(dt, worldSpeed, groundLine, viewportWidth float64) {
	interval := f.Interval(worldSpeed)

	f.timer += dt
	if f.timer >= interval {
		f.timer = 0
		f.spawn(groundLine, viewportWidth)
	}

	// Move obstacles left
	dx := worldSpeed * dt
	for i := range f.obstacles {
		f.obstacles[i].X -= dx
	}

	// Remove obstacles that scrolled past the cull margin
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X+o.W >= -f.cfg.CullMargin {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// spawn appends one obstacle just beyond the right edge, resting on the ground.
func (f *ObstacleField) spawn(groundLine, viewportWidth float64) {
	w := float64(f.rng.IntRange(f.cfg.MinWidth, f.cfg.MaxWidth))
	h := float64(f.rng.IntRange(f.cfg.MinHeight, f.cfg.MaxHeight))

	f.obstacles = append(f.obstacles, Obstacle{
		X: viewportWidth + f.cfg.SpawnOffset,
		Y: groundLine - h,
		W: w,
		H: h,
	})
}

// SetGroundLine moves every live obstacle so it rests on a new ground line.
func (f *ObstacleField) SetGroundLine(y float64) {
	for i := range f.obstacles {
		f.obstacles[i].Y = y - f.obstacles[i].H
	}
}

// FirstHit returns the first live obstacle overlapping r.
func (f *ObstacleField) FirstHit(r core.Rect) (Obstacle, bool) {
	for _, o := range f.obstacles {
		if r.Intersects(o.Bounds()) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// Obstacles returns the live obstacles in spawn order.
// The slice is reused between frames; callers must not keep it.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Timer returns the seconds accumulated toward the next spawn.
func (f *ObstacleField) Timer() float64 {
	return f.timer
}
