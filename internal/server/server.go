// Package server exposes the conversion pipeline and the message bridge over
// HTTP, for plugin UIs that run outside the process.
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/autoframe/pkg/autolayout"
	"github.com/matzehuels/autoframe/pkg/pipeline"
	"github.com/matzehuels/autoframe/pkg/session"
)

// DefaultAddr is the listen address when none is configured.
const DefaultAddr = "127.0.0.1:7420"

const (
	maxBodyBytes    = 8 << 20
	cleanupInterval = time.Minute
	shutdownTimeout = 5 * time.Second
)

// Config configures a Server.
type Config struct {
	Addr string

	// Defaults fill option fields a request leaves unset.
	Defaults autolayout.Overrides

	// SessionTTL is how long an idle bridge session is kept.
	SessionTTL time.Duration

	// Store holds bridge sessions. Nil means an in-process MemoryStore.
	Store session.Store
}

// Server is the HTTP API.
type Server struct {
	cfg        Config
	runner     *pipeline.Runner
	store      session.Store
	logger     *log.Logger
	httpServer *http.Server
}

// New creates a server. A nil logger discards output.
func New(cfg Config, logger *log.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = session.DefaultTTL
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	store := cfg.Store
	if store == nil {
		store = session.NewMemoryStore()
	}
	s := &Server{
		cfg:    cfg,
		runner: pipeline.NewRunner(logger),
		store:  store,
		logger: logger,
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.cfg.Addr }

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go session.RunCleanup(ctx, s.store, cleanupInterval)

	errc := make(chan error, 1)
	go func() {
		errc <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("serving HTTP API", "addr", s.cfg.Addr)

	select {
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
