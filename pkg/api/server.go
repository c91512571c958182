package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/semver-parser/pkg/defaults"
	"github.com/NVIDIA/semver-parser/pkg/logging"
	"github.com/NVIDIA/semver-parser/pkg/normalizer"
	"github.com/NVIDIA/semver-parser/pkg/server"
)

const (
	name           = "svpd"
	versionDefault = "dev"
)

// withTimeout bounds request processing so slow clients cannot hold
// handler goroutines open indefinitely.
func withTimeout(h http.HandlerFunc) http.HandlerFunc {
	return http.TimeoutHandler(h, defaults.VersionHandlerTimeout, "request timed out").ServeHTTP
}

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/semver-parser/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	// Setup version normalization handlers
	n := normalizer.New()

	r := map[string]http.HandlerFunc{
		"/v1/parse":    withTimeout(n.HandleParse),
		"/v1/bump":     withTimeout(n.HandleBump),
		"/v1/validate": withTimeout(n.HandleValidate),
	}

	// Create and run server
	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
