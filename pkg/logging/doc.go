// Package logging provides structured logging utilities for semver-parser
// components.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// and conventions for consistent logging across the CLI and the API server.
// It supports environment-based log level configuration, module/version
// context injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("svpd", version)
//
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Error("operation failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("svpctl", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug svpctl parse v1.2.3
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "svpd",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
//
// Debug-level loggers additionally include source location.
package logging
