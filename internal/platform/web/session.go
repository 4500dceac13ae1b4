package web

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 4096
)

// session owns one connection and its game. Every game mutation and every
// write happens on the goroutine running run.
type session struct {
	conn     *websocket.Conn
	game     *flappy.Game
	viewport *flappy.Viewport
	clock    *clock.Scheduler
	seed     int64
	logger   *log.Logger
}

// run drives the session until the context is cancelled, the client goes
// away or a write fails.
func (s *session) run(ctx context.Context) error {
	defer s.clock.Halt()

	inputs := make(chan clientMessage, 16)
	done := make(chan struct{})
	defer close(done)
	go s.readLoop(inputs, done)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if err := s.sendFrame(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			s.close(websocket.CloseGoingAway, "server shutting down")
			return ctx.Err()

		case msg, ok := <-inputs:
			if !ok {
				return nil
			}
			if err := s.apply(msg); err != nil {
				return err
			}

		case <-s.clock.C():
			if err := s.tick(); err != nil {
				return err
			}

		case <-ping.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return fmt.Errorf("web: ping: %w", err)
			}
		}
	}
}

// readLoop decodes client messages until the connection fails or done is
// closed, then closes inputs. Malformed messages are dropped.
func (s *session) readLoop(inputs chan<- clientMessage, done <-chan struct{}) {
	defer close(inputs)

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("read failed", "error", err)
			}
			return
		}
		_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logger.Debug("discarding malformed message", "error", err)
			continue
		}
		select {
		case inputs <- msg:
		case <-done:
			return
		}
	}
}

// apply handles one client message.
func (s *session) apply(msg clientMessage) error {
	if msg.Type == msgResize {
		s.viewport.Resize(msg.Width, msg.Height)
		w, h := s.viewport.Size()
		s.logger.Debug("viewport resized", "width", w, "height", h)
		return s.sendFrame()
	}

	action := msg.action()
	if action == core.ActionNone {
		s.logger.Debug("ignoring message", "type", msg.Type)
		return nil
	}

	if !s.game.IsActive() && s.seed == 0 {
		s.game.SetSeed(time.Now().UnixNano())
	}
	if !s.game.HandleAction(action) {
		return nil
	}

	s.logger.Info("run started")
	s.clock.Resume()
	return s.sendFrame()
}

// tick steps the game once and streams the result.
func (s *session) tick() error {
	result := s.game.Step()
	if err := s.sendFrame(); err != nil {
		return err
	}
	if !result.Ended() {
		return nil
	}

	s.clock.Halt()
	s.logger.Info("game over",
		"score", result.Score,
		"collision", result.Collision,
		"ticks", s.game.Ticks(),
	)
	return s.writeJSON(gameOverMessage{
		Type:      msgGameOver,
		Score:     result.Score,
		Ticks:     s.game.Ticks(),
		Collision: result.Collision,
	})
}

// sendFrame writes the current snapshot.
func (s *session) sendFrame() error {
	return s.writeJSON(frameMessage{Type: msgFrame, Snapshot: s.game.Snapshot()})
}

// writeJSON encodes and writes one text message.
func (s *session) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("web: marshal: %w", err)
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("web: write: %w", err)
	}
	return nil
}

// close sends a close frame, best effort.
func (s *session) close(code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
