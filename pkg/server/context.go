package server

import "context"

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// contextKeyRequestID is the context key for request ID
	contextKeyRequestID contextKey = "requestID"
	// contextKeyAPIVersion is the context key for API version
	contextKeyAPIVersion contextKey = "apiVersion"
)

// RequestIDFromContext returns the request ID set by the request ID
// middleware, or an empty string when the context carries none.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// APIVersionFromContext returns the negotiated API version, or an empty
// string when the context carries none.
func APIVersionFromContext(ctx context.Context) string {
	v, _ := ctx.Value(contextKeyAPIVersion).(string)
	return v
}
