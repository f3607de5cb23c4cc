package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/window"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	flagWindowWidth  int
	flagWindowHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a resizable desktop window and play.

Controls:
  Space/Up/W/Click - Start / jump
  Enter/R          - Restart
  Tab              - Change runner (between runs)
  Q/Esc            - Quit

Examples:
  runner window
  runner window --avatar robot --width 1280 --height 720`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagWindowWidth, "width", 800, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowHeight, "height", 480, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger := stderrLogger("runner")
	rc := runtimeConfig()

	p := openPersistence(logger)
	defer p.Close()

	cues := audio.New(audio.Options{Enabled: !flagMute, Volume: settings.Volume}, logger)
	defer cues.Close()

	ctrl := runner.NewController(cfg, p.deps(runner.Deps{
		Sound:  cues,
		Rand:   core.NewRandom(rc.Seed),
		Logger: logger,
	}), runner.NewAvatarSelector(parseAvatarFlag()))

	return window.Run(ctrl, window.Options{
		Width:  flagWindowWidth,
		Height: flagWindowHeight,
		TPS:    rc.TickRate,
		Logger: logger,
	})
}
