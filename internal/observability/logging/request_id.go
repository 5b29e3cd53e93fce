package logging

import (
	"context"

	"github.com/google/uuid"
)

const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// ValidateAndExtractRequestID keeps a well-formed UUID and replaces anything
// else with a fresh one.
func ValidateAndExtractRequestID(requestID string) string {
	if _, err := uuid.Parse(requestID); err == nil {
		return requestID
	}
	return uuid.NewString()
}
