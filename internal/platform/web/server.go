package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Server exposes the WebSocket endpoint and a liveness probe.
type Server struct {
	addr    string
	handler *Handler
	logger  *log.Logger
}

// NewServer creates a server listening on addr.
func NewServer(addr string, handler *Handler, logger *log.Logger) *Server {
	if logger == nil {
		logger = handler.logger
	}
	return &Server{addr: addr, handler: handler, logger: logger}
}

// Routes returns the HTTP routes: /ws and /healthz.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", s.handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "ok %d\n", s.handler.Active())
	})
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down. Open
// sessions see the cancellation through their request context.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
