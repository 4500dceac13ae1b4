package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the flappy WebSocket server",
	Long: `Start an HTTP server for browser clients.

Endpoints:
  /ws       - WebSocket game session, one game per connection.
              Optional ?width=W&height=H sets the initial viewport.
  /healthz  - Liveness probe

Client messages are JSON objects with a "type" of flap, tap, start, restart
or resize (with width and height). The server sends a "frame" message per
tick and a "gameOver" message when a run ends.

Examples:
  flappy web
  flappy web --addr :9090 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	gameCfg := loadGameConfig()
	logger := newLogger(os.Stderr, "flappy-web")

	handler := web.NewHandler(web.HandlerConfig{
		Game:     gameCfg,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	})
	server := web.NewServer(flagWebAddr, handler, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting flappy web server on %s (ws endpoint: /ws)\n", flagWebAddr)
	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
