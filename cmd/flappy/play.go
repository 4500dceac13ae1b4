package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W  - Flap (or start/restart)
  Enter       - Start
  R           - Restart (after game over)
  Click       - Flap
  ?           - Help
  Q/Ctrl+C    - Quit

The terminal owns the screen while playing, so logs are only written when
--log-file is given.

Examples:
  flappy play
  flappy play --fps 30
  flappy play --seed 42 --log-file flappy.log
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs one terminal session. It returns instead of exiting so the
// deferred log close always runs.
func playGame() error {
	gameCfg := loadGameConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	out, closeLog, err := openLogOutput(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(out, "flappy")

	logger.Info("starting", "width", width, "height", height, "fps", cfg.TickRate, "seed", cfg.Seed)
	if err := tui.Run(gameCfg, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogOutput opens path for appending. An empty path discards logs.
func openLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, f.Close, nil
}
