package boundary

import "context"

type contextKey int

const correlationIDKey contextKey = iota

// ContextWithCorrelationID returns a context carrying the given
// correlation id. Boundaries prefer it over generating a fresh one, so
// a caller can thread one trace token through several crossings.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromContext retrieves the correlation id from the
// context, or "" if none is present.
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}
