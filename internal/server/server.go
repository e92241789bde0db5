// Package server exposes the solver over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/knapsack/internal/config"
)

// shutdownTimeout bounds graceful shutdown once ctx is done.
const shutdownTimeout = 10 * time.Second

// Server is the HTTP front of the solver.
type Server struct {
	srv *http.Server
	log logr.Logger
}

// New builds a server listening on cfg.Server.Addr.
func New(cfg *config.Config, log logr.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           NewRouter(NewHandlers(cfg, log)),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
