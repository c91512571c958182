package serializer

import "context"

// Serializer is an interface for serializing parse and validation results.
// Implementations of this interface can serialize data to various formats
// such as JSON, YAML, or plain text.
//
// The context parameter is used for cancellation and timeouts, particularly
// important for implementations that perform I/O operations.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
