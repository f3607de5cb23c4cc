package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Pick a runner from the menu and play in the terminal.
After a run, press B or Esc to return to the menu.

Controls:
  Space/Up/W   - Start / jump
  Enter/R      - Restart
  Tab          - Change runner (between runs)
  Ctrl+S       - Save a screenshot
  B/Esc        - Back to menu (between runs)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, gentle ramp
  normal - Configured ramp
  hard   - Faster start, steep ramp
  fixed  - No ramp, stays at base speed

Passing --avatar skips the menu.

Examples:
  runner play
  runner play --avatar bunny
  runner play --difficulty hard
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	rc := runtimeConfig()
	p := openPersistence(logger)
	defer p.Close()

	cues := audio.New(audio.Options{Enabled: !flagMute, Volume: settings.Volume}, logger)
	defer cues.Close()

	selector := runner.NewAvatarSelector(parseAvatarFlag())
	ctrl := runner.NewController(cfg, p.deps(runner.Deps{
		Sound:  cues,
		Rand:   core.NewRandom(rc.Seed),
		Logger: logger,
	}), selector)

	logger.Info("play", "seed", rc.Seed, "avatar", selector.Avatar(), "difficulty", flagDifficulty)

	// Direct play when the avatar was chosen on the command line
	if cmd.Flags().Changed("avatar") {
		if _, err := tui.Run(ctrl, gameOptions(rc, cfg.Viewport, logger)); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	}

	// Menu loop
	for {
		res, err := tui.RunMenu(p.store, selector.Avatar(), rc.ScreenW, rc.ScreenH)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		if res.Width > 0 && res.Height > 0 {
			rc.ScreenW, rc.ScreenH = res.Width, res.Height
		}

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(p.store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return fmt.Errorf("running scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		selector.Set(res.Avatar)
		backToMenu, err := tui.Run(ctrl, gameOptions(rc, cfg.Viewport, logger))
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
