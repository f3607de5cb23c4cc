package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Viewport: ViewportConfig{
			CellWidth:    10,
			CellHeight:   20,
			GroundOffset: 40,
		},
		Player: PlayerConfig{
			X:            90,
			Width:        50,
			Height:       60,
			Gravity:      2200,
			JumpVelocity: 780,
		},
		Obstacles: ObstacleConfig{
			MinWidth:    18,
			MaxWidth:    34,
			MinHeight:   28,
			MaxHeight:   70,
			MinInterval: 0.55,
			MaxInterval: 1.6,
			SpawnOffset: 10,
			CullMargin:  60,
		},
		Speed: SpeedConfig{
			Base:  300,
			Max:   1100,
			Accel: 38,
		},
		Score: ScoreConfig{
			Factor: 0.1,
		},
		Loop: LoopConfig{
			MaxFrameDelta: 0.033,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `runner config`.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
