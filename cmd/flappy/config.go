package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration that would be used, as YAML.

Config sources, first found wins:
  1. --config path (YAML, or TOML when the name ends in .toml)
  2. ~/.arcade/configs/flappy.yaml
  3. ./configs/flappy.yaml
  4. Built-in defaults

Examples:
  flappy config
  flappy config --config ./flappy.toml > flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg := loadGameConfig()

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(data)
}
