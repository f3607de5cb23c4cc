package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML.

Save it to ~/.runner/configs/runner.yaml or ./configs/runner.yaml and
edit the values you want to change; missing keys keep their defaults.

Examples:
  runner config > ~/.runner/configs/runner.yaml
  runner config --check ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagConfigCheck string

func init() {
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate a config file instead of printing the default")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigCheck == "" {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	if _, err := config.LoadRunner(flagConfigCheck); err != nil {
		return err
	}
	fmt.Printf("%s: ok\n", flagConfigCheck)
	return nil
}
