// runner is an endless side-scrolling runner for the terminal, a desktop
// window, or remote play over SSH.
//
// Usage:
//
//	runner play              - Pick a runner and play in the terminal
//	runner window            - Play in a desktop window
//	runner serve             - Start SSH server for remote play
//	runner scores [avatar]   - Show high scores
//	runner avatars           - List available runners
//	runner config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.runner/scores.db)
//	--log-level <lvl>   - Set log level (debug, info, warn, error)
//
// Flag defaults come from RUNNER_* environment variables.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// settings holds env-derived flag defaults.
	settings = loadSettings()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump the obstacles for as long as you can",
	Long: `Runner is an endless side-scroller. Jump over obstacles while the
world speeds up; your best score is kept between runs.

Available commands:
  play     - Pick a runner and play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  avatars  - List available runners
  config   - Print the default game config

Examples:
  runner play
  runner play --avatar bunny --difficulty hard
  runner window
  runner serve --ssh :2222
  runner scores bunny`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadSettings reads RUNNER_* variables, falling back to built-in defaults.
func loadSettings() config.Settings {
	s, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return config.Settings{FPS: 60, DBPath: "~/.runner/scores.db", Audio: true, Volume: 0.5, Avatar: "penguin", LogLevel: "info"}
	}
	return s
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", settings.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", settings.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", settings.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", settings.LogLevel, "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(avatarsCmd)
	rootCmd.AddCommand(configCmd)
}

// fileLogger returns a logger writing to ~/.runner/runner.log so the
// alt screen stays clean. Falls back to a discarding logger.
func fileLogger() (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return discardLogger(), func() {}
	}
	dir := filepath.Join(home, ".runner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discardLogger(), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "runner.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return discardLogger(), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "runner",
	})
	return logger, func() { f.Close() }
}

// stderrLogger returns a logger for long-running foreground commands.
func stderrLogger(prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          prefix,
	})
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
