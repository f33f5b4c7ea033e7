package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-item-tracker/internal/platform/logging"
)

// Logging returns middleware that writes one access log line per request.
// The request-scoped logger it stores with logging.WithLogger carries the
// request and correlation IDs so handler logs can be joined to the access
// line. Probe traffic under /health is logged at debug level, client errors
// at warn and server errors at error.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", headerAttrs(r.Header)...)
			}

			sr := record(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			status := sr.Status()
			if status == 0 {
				status = http.StatusOK
			}

			child.LogAttrs(ctx, accessLevel(r.URL.Path, status), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", status),
				slog.Int64("bytes", sr.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func accessLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case strings.HasPrefix(path, "/health/"):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// routePattern returns the chi route that matched r, or "" outside a chi
// router or before routing finished.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}

func headerAttrs(h http.Header) []any {
	attrs := make([]any, 0, len(h))
	for name, vals := range h {
		v := strings.Join(vals, ",")
		if logging.IsSensitiveHeader(name) {
			v = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(name, v))
	}
	return attrs
}

// withSubject adds the session subject to the request-scoped logger.
func withSubject(ctx context.Context, subject string) context.Context {
	return logging.With(ctx, slog.String("subject", subject))
}
