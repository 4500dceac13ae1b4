// Package web serves the flappy game to browser clients over WebSocket.
// Each connection gets its own game driven by a server-side clock; the
// client sends input messages and receives a JSON frame per tick.
package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Default viewport for clients that do not report their canvas size.
const (
	DefaultViewWidth  = 800
	DefaultViewHeight = 600
)

// HandlerConfig configures the WebSocket handler.
type HandlerConfig struct {
	Game     config.FlappyConfig
	TickRate int
	Seed     int64 // 0 = time based per run
	Logger   *log.Logger
}

// Handler upgrades HTTP requests and runs one game session per connection.
type Handler struct {
	cfg      HandlerConfig
	logger   *log.Logger
	upgrader websocket.Upgrader
	nextID   atomic.Uint64
	active   atomic.Int64
}

// NewHandler creates a handler. A nil logger discards output.
func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Handler{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Active returns the number of open sessions.
func (h *Handler) Active() int64 {
	return h.active.Load()
}

// ServeHTTP upgrades the connection and blocks until the session ends.
// Optional width and height query parameters set the initial viewport.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	width := queryFloat(r, "width", DefaultViewWidth)
	height := queryFloat(r, "height", DefaultViewHeight)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	id := h.nextID.Add(1)
	logger := h.logger.With("session", id)

	viewport := flappy.NewViewport(width, height)
	s := &session{
		conn:     conn,
		game:     flappy.New(h.cfg.Game, viewport, h.cfg.Seed),
		viewport: viewport,
		clock:    clock.NewScheduler(h.cfg.TickRate),
		seed:     h.cfg.Seed,
		logger:   logger,
	}

	h.active.Add(1)
	defer h.active.Add(-1)

	logger.Info("session started", "remote", r.RemoteAddr, "width", width, "height", height)
	err = s.run(r.Context())
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("session failed", "error", err)
	}
	logger.Info("session ended", "score", s.game.Score(), "state", s.game.State())
}

// queryFloat reads a positive number from the query string.
func queryFloat(r *http.Request, key string, fallback float64) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
