package internal

import (
	"context"
	"fmt"
	"time"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	RequestIDKey contextKey = "request_id"
)

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return "unknown"
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GenerateRequestID creates a unique request ID for tracing one segmentation
// call through logs. The full nanosecond clock keeps IDs distinct across
// concurrent requests.
func GenerateRequestID() string {
	return fmt.Sprintf("seg_%d", time.Now().UnixNano())
}
