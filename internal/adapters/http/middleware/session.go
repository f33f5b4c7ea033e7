package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/dto"
)

// SessionVerifier resolves the session carried by a request to its subject.
type SessionVerifier interface {
	FromRequest(r *http.Request) (string, error)
}

type sessionKey struct{}

// SessionFromContext returns the authenticated subject, or "" when the
// request carried no valid session.
func SessionFromContext(ctx context.Context) string {
	if sub, ok := ctx.Value(sessionKey{}).(string); ok {
		return sub
	}
	return ""
}

// Session returns middleware that stores the subject of a valid session in
// the request context and on the request-scoped logger. Requests without one
// pass through unchanged.
func Session(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sub, err := verifier.FromRequest(r); err == nil {
				ctx := context.WithValue(r.Context(), sessionKey{}, sub)
				r = r.WithContext(withSubject(ctx, sub))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession returns middleware that rejects requests without a valid
// session with a 401 problem response. It must run after Session.
func RequireSession(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SessionFromContext(r.Context()) == "" {
				logger.InfoContext(r.Context(), "rejected request without session",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				dto.WriteErrorResponse(w, r, dto.ErrAuthenticationRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
