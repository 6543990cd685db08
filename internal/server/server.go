package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"wellness_gauntlet/pkg/logger"

	"go.uber.org/zap"
)

type Config struct {
	Host            string
	Port            string
	ShutdownTimeout time.Duration
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type Server struct {
	name            string
	server          *http.Server
	shutdownTimeout time.Duration
}

func New(name string, cfg Config, handler http.Handler) *Server {
	return &Server{
		name: name,
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Logger()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("service", s.name), zap.String("addr", ln.Addr().String()))
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server", zap.String("service", s.name))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	log.Info("Server shut down complete", zap.String("service", s.name))
	return nil
}
