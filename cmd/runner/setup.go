package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAvatar     string
	flagMute       bool
)

// addGameFlags registers the flags shared by play and window.
func addGameFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	fs.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	fs.StringVar(&flagAvatar, "avatar", settings.Avatar, "Runner avatar (see 'runner avatars')")
	fs.BoolVar(&flagMute, "mute", !settings.Audio, "Disable sound")
}

// loadGameConfig reads the game config and applies the difficulty preset.
func loadGameConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	return cfg, nil
}

// runtimeConfig captures the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	return rc
}

// parseAvatarFlag resolves --avatar, falling back to the default runner.
func parseAvatarFlag() runner.AvatarID {
	id, ok := runner.ParseAvatar(flagAvatar)
	if !ok {
		fmt.Fprintf(os.Stderr, "Warning: unknown avatar %q, using %s\n", flagAvatar, runner.AvatarPenguin)
	}
	return id
}

// persistence is the optional score store plus its async writer.
type persistence struct {
	store  *storage.Store
	writer *storage.Writer
}

// openPersistence opens the score database. A failure is reported and
// play continues without saving.
func openPersistence(logger *log.Logger) persistence {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		return persistence{}
	}
	return persistence{store: store, writer: storage.NewWriter(store, 0, logger)}
}

// deps wires the writer into a session.
func (p persistence) deps(deps runner.Deps) runner.Deps {
	if p.writer != nil {
		deps.Scores = p.writer
		deps.Observers = append(deps.Observers, p.writer)
	}
	return deps
}

// Close flushes pending writes and closes the database.
func (p persistence) Close() {
	if p.writer != nil {
		p.writer.Close()
	}
	if p.store != nil {
		p.store.Close() //nolint:errcheck // Best-effort close
	}
}

// gameOptions builds terminal host options from the runtime config.
func gameOptions(rc core.RuntimeConfig, vp config.ViewportConfig, logger *log.Logger) tui.Options {
	return tui.Options{
		TickRate: rc.TickRate,
		Width:    rc.ScreenW,
		Height:   rc.ScreenH,
		Viewport: vp,
		Logger:   logger,
	}
}
