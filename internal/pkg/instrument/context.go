package instrument

import "context"

type correlationIDKey struct{}

// SetCorrelationID returns a context carrying the request correlation ID.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}

// GetCorrelationID returns the correlation ID stored in the context,
// or an empty string when none is set.
func GetCorrelationID(ctx context.Context) string {
	if v, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return v
	}

	return ""
}
