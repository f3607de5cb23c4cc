package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [avatar]",
	Short: "Show high scores",
	Long: `Display the top scores, for all runners or for one avatar.

Examples:
  runner scores
  runner scores robot
  runner scores --limit 25
  runner scores bunny --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded runs instead of listing them")
}

func runScores(_ *cobra.Command, args []string) error {
	avatar := ""
	title := "All runners"
	if len(args) == 1 {
		id, ok := runner.ParseAvatar(args[0])
		if !ok {
			return fmt.Errorf("unknown avatar %q (run 'runner avatars' to see available runners)", args[0])
		}
		avatar = id.String()
		title = avatar
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(avatar); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores - %s\n", title)
		return nil
	}

	scores, err := store.TopScores(avatar, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %s\n", "Rank", "Score", "Runner", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %s\n", "----", "-----", "------", "----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-6s  %-7s  %s\n",
			i+1, entry.Score, entry.Avatar,
			fmt.Sprintf("%.1fs", entry.Duration.Seconds()),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if avatar == "" {
		if best, err := store.LoadHighScore(); err == nil {
			fmt.Printf("Best: %d\n", best)
		}
		return nil
	}
	if stats, err := store.Stats(avatar); err == nil {
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f   Time played: %s\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalTime.Round(time.Second))
	}
	return nil
}
