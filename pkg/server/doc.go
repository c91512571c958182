// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements the HTTP server for the version normalization API.
//
// The server is a stateless HTTP API with the following key components:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//   - Prometheus metrics on /metrics
//
// # Usage
//
// Basic server startup:
//
//	srv := server.New(
//	    server.WithName("svpd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/parse": handleParse,
//	    }),
//	)
//
//	if err := srv.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// Registered handlers are wrapped with the standard middleware chain
// (metrics, API version negotiation, request ID, panic recovery, rate
// limiting, request logging). The system endpoints /health, /ready, and
// /metrics bypass rate limiting.
//
// # Observability
//
// All requests accept an optional X-Request-Id header (UUID format).
// If not provided, the server generates one automatically. The request ID
// is returned in the X-Request-Id response header and included in all
// error responses for tracing.
//
// Rate limit status is reported via response headers:
//
//	X-RateLimit-Limit: Total requests allowed per window
//	X-RateLimit-Remaining: Requests remaining in current window
//	X-RateLimit-Reset: Unix timestamp when window resets
//
// When rate limited, the server returns 429 with a Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "missing required parameter: version",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Error codes map to HTTP status codes via HTTPStatusFromCode; see the
// errors package for the available codes.
//
// # Configuration
//
// Server configuration comes from environment variables (PORT,
// SHUTDOWN_TIMEOUT_SECONDS) with sensible defaults, and can be adjusted
// programmatically via the Option functions passed to New.
package server
