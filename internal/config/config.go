// Package config provides YAML-based game configuration loading, difficulty
// presets and environment settings for the runner.
package config

// RunnerConfig contains all tuning for the endless runner.
// Distances are world units, times are seconds.
type RunnerConfig struct {
	Viewport  ViewportConfig `yaml:"viewport"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Speed     SpeedConfig    `yaml:"speed"`
	Score     ScoreConfig    `yaml:"score"`
	Loop      LoopConfig     `yaml:"loop"`
}

// ViewportConfig defines how the world maps onto the host surface.
type ViewportConfig struct {
	CellWidth    float64 `yaml:"cell_width"`    // World units per terminal column
	CellHeight   float64 `yaml:"cell_height"`   // World units per terminal row
	GroundOffset float64 `yaml:"ground_offset"` // Distance from the bottom edge to the ground line
}

// PlayerConfig defines player size and vertical physics.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration
	JumpVelocity float64 `yaml:"jump_velocity"` // Upward impulse magnitude
}

// ObstacleConfig defines obstacle sizing, spawn timing and culling.
type ObstacleConfig struct {
	MinWidth    int     `yaml:"min_width"`
	MaxWidth    int     `yaml:"max_width"`
	MinHeight   int     `yaml:"min_height"`
	MaxHeight   int     `yaml:"max_height"`
	MinInterval float64 `yaml:"min_interval"` // Spawn interval at max speed
	MaxInterval float64 `yaml:"max_interval"` // Spawn interval at base speed
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance beyond the right edge where obstacles appear
	CullMargin  float64 `yaml:"cull_margin"`  // Distance left of x=0 past which obstacles are removed
}

// SpeedConfig defines the capped linear difficulty ramp.
type SpeedConfig struct {
	Base  float64 `yaml:"base"`
	Max   float64 `yaml:"max"`
	Accel float64 `yaml:"accel"` // Speed gained per second of run time
}

// ScoreConfig defines how distance converts to score.
type ScoreConfig struct {
	Factor float64 `yaml:"factor"`
}

// LoopConfig defines frame timing safeguards.
type LoopConfig struct {
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Upper bound for a single frame's dt
}
