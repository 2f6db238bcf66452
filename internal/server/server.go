package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"stagehand/internal/logger"
)

// Server runs the demo service until its context is canceled.
type Server struct {
	log  *logger.Logger
	http *http.Server
}

func New(log *logger.Logger) *Server {
	return &Server{
		log: log,
		http: &http.Server{
			Addr:              Addr,
			Handler:           NewRouter(),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Run blocks serving requests. On context cancellation it drains in-flight
// requests before returning; a listen failure (e.g. port already bound)
// surfaces directly.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("demo service listening", "addr", Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
