package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/catalogops/lineage-engine/pkg/logging"
)

// GracefulServer wraps an HTTP server with signal-driven graceful shutdown
type GracefulServer struct {
	server          *http.Server
	logger          logging.Logger
	shutdownTimeout time.Duration
	shutdownCh      chan struct{}
	shutdownOnce    sync.Once
}

// NewGracefulServer wraps an already-configured http.Server. A nil logger
// falls back to the no-op logger.
func NewGracefulServer(srv *http.Server, shutdownTimeout time.Duration, logger logging.Logger) *GracefulServer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = 15 * time.Second
	}
	return &GracefulServer{
		server:          srv,
		logger:          logger.With(logging.Component("server")),
		shutdownTimeout: shutdownTimeout,
		shutdownCh:      make(chan struct{}),
	}
}

// Start serves until the listener fails or a shutdown signal arrives
func (gs *GracefulServer) Start() error {
	go gs.handleSignals()

	gs.logger.Info("HTTP server starting", logging.String("addr", gs.server.Addr))
	if err := gs.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
// Safe to call more than once.
func (gs *GracefulServer) Shutdown() error {
	var err error
	gs.shutdownOnce.Do(func() {
		close(gs.shutdownCh)

		ctx, cancel := context.WithTimeout(context.Background(), gs.shutdownTimeout)
		defer cancel()

		gs.logger.Info("graceful shutdown started",
			logging.Duration("timeout", gs.shutdownTimeout))
		if shutdownErr := gs.server.Shutdown(ctx); shutdownErr != nil {
			err = shutdownErr
			gs.logger.Error("shutdown error", logging.Error(shutdownErr))
			return
		}
		gs.logger.Info("shutdown complete")
	})
	return err
}

// IsShuttingDown reports whether shutdown has been initiated
func (gs *GracefulServer) IsShuttingDown() bool {
	select {
	case <-gs.shutdownCh:
		return true
	default:
		return false
	}
}

func (gs *GracefulServer) handleSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	gs.logger.Info("shutdown signal received", logging.String("signal", sig.String()))
	if err := gs.Shutdown(); err != nil {
		os.Exit(1)
	}
}
