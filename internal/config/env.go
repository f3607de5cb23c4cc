package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are process-level options read from the environment.
// They provide the defaults for the matching CLI flags.
type Settings struct {
	FPS      int     `env:"RUNNER_FPS" envDefault:"60"`
	Seed     int64   `env:"RUNNER_SEED" envDefault:"0"`
	DBPath   string  `env:"RUNNER_DB" envDefault:"~/.runner/scores.db"`
	Audio    bool    `env:"RUNNER_AUDIO" envDefault:"true"`
	Volume   float64 `env:"RUNNER_VOLUME" envDefault:"0.5"`
	Avatar   string  `env:"RUNNER_AVATAR" envDefault:"penguin"`
	LogLevel string  `env:"RUNNER_LOG_LEVEL" envDefault:"info"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("config: parse env: %w", err)
	}
	if s.FPS <= 0 {
		s.FPS = 60
	}
	if s.Volume < 0 {
		s.Volume = 0
	}
	if s.Volume > 1 {
		s.Volume = 1
	}
	return s, nil
}
