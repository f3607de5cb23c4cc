package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// Validate checks that every range is non-degenerate and every physical
// constant is positive, so the simulation arithmetic stays total.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0 {
		errs = append(errs, errors.New("viewport cell size must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.Gravity <= 0 || c.Player.JumpVelocity <= 0 {
		errs = append(errs, errors.New("player gravity and jump_velocity must be positive"))
	}
	if c.Obstacles.MinWidth <= 0 || c.Obstacles.MaxWidth < c.Obstacles.MinWidth {
		errs = append(errs, fmt.Errorf("obstacle width range [%d, %d] is invalid", c.Obstacles.MinWidth, c.Obstacles.MaxWidth))
	}
	if c.Obstacles.MinHeight <= 0 || c.Obstacles.MaxHeight < c.Obstacles.MinHeight {
		errs = append(errs, fmt.Errorf("obstacle height range [%d, %d] is invalid", c.Obstacles.MinHeight, c.Obstacles.MaxHeight))
	}
	if c.Obstacles.MinInterval <= 0 || c.Obstacles.MaxInterval < c.Obstacles.MinInterval {
		errs = append(errs, fmt.Errorf("spawn interval range [%g, %g] is invalid", c.Obstacles.MinInterval, c.Obstacles.MaxInterval))
	}
	if c.Obstacles.CullMargin < 0 {
		errs = append(errs, errors.New("obstacle cull_margin must not be negative"))
	}
	if c.Speed.Base <= 0 || c.Speed.Max <= c.Speed.Base {
		errs = append(errs, fmt.Errorf("speed range [%g, %g] is invalid", c.Speed.Base, c.Speed.Max))
	}
	if c.Speed.Accel < 0 {
		errs = append(errs, errors.New("speed accel must not be negative"))
	}
	if c.Score.Factor < 0 {
		errs = append(errs, errors.New("score factor must not be negative"))
	}
	if c.Loop.MaxFrameDelta <= 0 {
		errs = append(errs, errors.New("loop max_frame_delta must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
