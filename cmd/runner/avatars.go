package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var avatarsCmd = &cobra.Command{
	Use:   "avatars",
	Short: "List all available runners",
	Long:  `Shows every avatar that can be picked with --avatar or in the menu.`,
	Args:  cobra.NoArgs,
	Run:   runAvatars,
}

func runAvatars(_ *cobra.Command, _ []string) {
	fmt.Println("Available runners:")
	fmt.Println()

	fmt.Printf("  %-6s  %s\n", "Name", "Look")
	fmt.Printf("  %-6s  %s\n", "----", "----")

	for _, av := range runner.Avatars() {
		fmt.Printf("  %-6s  %s\n", av.Name, tui.Swatch(av.Color, av.Glyph, 3))
	}

	fmt.Println()
	fmt.Println("Run 'runner play --avatar <name>' to play as one.")
}
