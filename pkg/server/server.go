package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Server represents the HTTP server
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	mu          sync.RWMutex
	ready       bool
}

// Option customizes the server configuration.
type Option func(*Config)

// WithName sets the server identity used in the default route response.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithVersion sets the server version used in the default route response.
func WithVersion(version string) Option {
	return func(c *Config) {
		c.Version = version
	}
}

// WithHandler adds route handlers; each is wrapped with the standard
// middleware chain.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(c *Config) {
		if c.Handlers == nil {
			c.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for path, h := range handlers {
			c.Handlers[path] = h
		}
	}
}

// WithPort overrides the listen port.
func WithPort(port int) Option {
	return func(c *Config) {
		c.Port = port
	}
}

// WithConfig replaces the entire configuration. Apply it before other
// options when combining.
func WithConfig(config *Config) Option {
	return func(c *Config) {
		*c = *config
	}
}

// New creates a new server instance with the given options applied on top
// of the default configuration.
func New(opts ...Option) *Server {
	config := parseConfig()
	for _, opt := range opts {
		opt(config)
	}

	s := &Server{
		config:      config,
		rateLimiter: rate.NewLimiter(config.RateLimit, config.RateLimitBurst),
	}

	// Install the default root handler unless the caller provided one.
	if s.config.Handlers == nil {
		s.config.Handlers = make(map[string]http.HandlerFunc, 1)
	}
	if _, ok := s.config.Handlers["/"]; !ok {
		s.config.Handlers["/"] = s.handleDefault
	}

	mux := s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Address, config.Port),
		Handler:      mux,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return s
}

// SetReady marks the server as ready to serve traffic
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Start starts the HTTP server and blocks until the context is canceled
// or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.SetReady(true)

	slog.Info("starting server", "addr", s.httpServer.Addr)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run starts the server with graceful shutdown on SIGINT/SIGTERM and blocks
// until the server stops.
func (s *Server) Run(ctx context.Context) error {
	slog.Info("server config",
		slog.String("name", s.config.Name),
		slog.String("version", s.config.Version),
		slog.String("address", s.httpServer.Addr),
		slog.Any("rateLimit", s.config.RateLimit),
		slog.Int("rateLimitBurst", s.config.RateLimitBurst),
		slog.Duration("readTimeout", s.config.ReadTimeout),
		slog.Duration("writeTimeout", s.config.WriteTimeout),
		slog.Duration("idleTimeout", s.config.IdleTimeout),
		slog.Duration("shutdownTimeout", s.config.ShutdownTimeout),
	)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
