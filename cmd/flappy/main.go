// flappy is a Flappy Bird-style arcade game for the terminal, SSH and the
// browser.
//
// Usage:
//
//	flappy                   - Play in this terminal (same as "flappy play")
//	flappy play              - Play in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy web               - Start WebSocket server for browser clients
//	flappy config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load game config from a YAML or TOML file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide the bird through the pipes",
	Long: `Flappy is a Flappy Bird-style arcade game. Flap to stay in the air
and pass through the gaps; every pipe that leaves the screen scores a point.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  web      - Start WebSocket server for browser clients
  config   - Print the effective game configuration

Examples:
  flappy
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy web --addr :8080
  flappy config --config ./flappy.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the game config or exits with an error.
func loadGameConfig() config.FlappyConfig {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates a logger at the level given by --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
