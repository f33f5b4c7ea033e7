package httpclient

import (
	"context"
	"net/http"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
	nonIdempotentKey struct{}
)

// WithRequestID stores the inbound request ID so that Do forwards it as
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID so that Do forwards it as
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// WithNonIdempotent marks the request carried by ctx as unsafe to replay.
// Such requests are retried only on 429 responses, which Notion sends before
// doing any work.
func WithNonIdempotent(ctx context.Context) context.Context {
	return context.WithValue(ctx, nonIdempotentKey{}, true)
}

func isIdempotent(ctx context.Context) bool {
	v, _ := ctx.Value(nonIdempotentKey{}).(bool)
	return !v
}

// forwardIDs copies the request and correlation IDs found on ctx onto h.
func forwardIDs(ctx context.Context, h http.Header) {
	for _, f := range []struct {
		key    any
		header string
	}{
		{requestIDKey{}, "X-Request-ID"},
		{correlationIDKey{}, "X-Correlation-ID"},
	} {
		if id, _ := ctx.Value(f.key).(string); id != "" {
			h.Set(f.header, id)
		}
	}
}
