package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the type of keys this package stores in request contexts.
type ContextKey string

// Context keys for various values
const (
	// UserIDContextKey is the context key for the acting user's ID
	UserIDContextKey ContextKey = "userID"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// BodyContextKey holds the validated request body
	BodyContextKey ContextKey = "body"
)

// SetTraceID adds a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithUserID records the authenticated user for the rest of the request.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// UserIDFromContext returns the authenticated user ID, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	return userID, ok && userID != ""
}

// WithBody stores a decoded and validated request body.
func WithBody[T any](ctx context.Context, body *T) context.Context {
	return context.WithValue(ctx, BodyContextKey, body)
}

// BodyFromContext returns the body stored by WithBody. The boolean is false
// when no body of type T was stored.
func BodyFromContext[T any](ctx context.Context) (*T, bool) {
	body, ok := ctx.Value(BodyContextKey).(*T)
	return body, ok && body != nil
}
