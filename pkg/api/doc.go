// Package api provides the HTTP API layer for the version normalization
// service (svpd).
//
// This package acts as a thin wrapper around the reusable pkg/server
// package, configuring it with application-specific routes and handlers.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/semver-parser/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/parse    - Normalize a version string
//   - GET /v1/bump     - Increment a version component
//   - GET /v1/validate - Validate a string against the composer grammar
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters
//
//   - version: the version string to process (all endpoints, required)
//   - level: major, minor, or patch (/v1/bump only, default: patch)
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/semver-parser/pkg/api.version=1.0.0'"
package api
