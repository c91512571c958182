package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/NVIDIA/semver-parser/pkg/errors"
	"github.com/NVIDIA/semver-parser/pkg/serializer"
	"github.com/google/uuid"
)

// HTTPStatusFromCode maps a structured error code to an HTTP status code.
// Unknown codes map to 500.
func HTTPStatusFromCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case errors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may reasonably retry a request
// that failed with the given code.
func retryableFromCode(code errors.ErrorCode) bool {
	switch code {
	case errors.ErrCodeTimeout,
		errors.ErrCodeUnavailable,
		errors.ErrCodeRateLimitExceeded,
		errors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails merges two detail maps, with b taking precedence on
// conflicting keys. Returns nil when both inputs are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// WriteError writes a structured error response with the request ID from the
// request context. A request ID is generated when the context carries none.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response derived from err. Structured
// errors carry their own code, message, and context; anything else is
// reported as an internal error with the fallback message. The error's text
// is always included in the response details under "error".
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	code := errors.ErrCodeInternal
	message := fallbackMessage
	var errDetails map[string]any

	var serr *errors.StructuredError
	if stderrors.As(err, &serr) {
		code = serr.Code
		message = serr.Message
		errDetails = serr.Context
	}

	merged := mergeDetails(errDetails, details)
	if err != nil {
		if merged == nil {
			merged = make(map[string]any, 1)
		}
		cause := err.Error()
		if serr != nil && serr.Cause != nil {
			cause = serr.Cause.Error()
		}
		merged["error"] = cause
	}

	WriteError(w, r, HTTPStatusFromCode(code), code, message, retryableFromCode(code), merged)
}
