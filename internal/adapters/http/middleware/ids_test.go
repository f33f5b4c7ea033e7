package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/middleware"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// traceIDs runs a request through RequestID and CorrelationID and returns
// the IDs seen by the handler.
func traceIDs(t *testing.T, headers map[string]string) (reqID, corrID string, rec *httptest.ResponseRecorder) {
	t.Helper()

	handler := middleware.RequestID()(
		middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			reqID = middleware.RequestIDFromContext(r.Context())
			corrID = middleware.CorrelationIDFromContext(r.Context())
		})),
	)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/items", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	handler.ServeHTTP(rec, req)
	return reqID, corrID, rec
}

func TestRequestID_GeneratesID(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := traceIDs(t, nil)

	if !uuidPattern.MatchString(reqID) {
		t.Errorf("request ID %q does not match UUID v4 pattern", reqID)
	}
	if corrID != reqID {
		t.Errorf("correlation ID = %q, want request ID %q", corrID, reqID)
	}
	if got := rec.Header().Get("X-Request-ID"); got != reqID {
		t.Errorf("response X-Request-ID = %q, want %q", got, reqID)
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != reqID {
		t.Errorf("response X-Correlation-ID = %q, want %q", got, reqID)
	}
}

func TestTraceIDs_IncomingHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		wantKept bool
	}{
		{name: "well formed is reused", incoming: "incoming-123", wantKept: true},
		{name: "embedded space is replaced", incoming: "bad id", wantKept: false},
		{name: "control character is replaced", incoming: "bad\x01id", wantKept: false},
		{name: "oversized is replaced", incoming: strings.Repeat("a", 129), wantKept: false},
		{name: "longest accepted", incoming: strings.Repeat("a", 128), wantKept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reqID, corrID, _ := traceIDs(t, map[string]string{
				"X-Request-ID":     tt.incoming,
				"X-Correlation-ID": tt.incoming,
			})

			if tt.wantKept {
				if reqID != tt.incoming {
					t.Errorf("request ID = %q, want %q", reqID, tt.incoming)
				}
				if corrID != tt.incoming {
					t.Errorf("correlation ID = %q, want %q", corrID, tt.incoming)
				}
				return
			}
			if !uuidPattern.MatchString(reqID) {
				t.Errorf("request ID = %q, want a generated UUID", reqID)
			}
			if corrID != reqID {
				t.Errorf("correlation ID = %q, want fallback to request ID %q", corrID, reqID)
			}
		})
	}
}

func TestCorrelationID_IndependentOfRequestID(t *testing.T) {
	t.Parallel()

	reqID, corrID, _ := traceIDs(t, map[string]string{"X-Correlation-ID": "journey-7"})

	if corrID != "journey-7" {
		t.Errorf("correlation ID = %q, want %q", corrID, "journey-7")
	}
	if reqID == "journey-7" {
		t.Error("request ID reused the correlation header")
	}
}

func TestCorrelationID_WithoutRequestID(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.CorrelationIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if gotID != "" {
		t.Errorf("correlation ID = %q, want empty", gotID)
	}
	if h := rec.Header().Get("X-Correlation-ID"); h != "" {
		t.Errorf("response X-Correlation-ID = %q, want unset", h)
	}
}

func TestRequestID_UniquenessAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	for range 50 {
		reqID, _, _ := traceIDs(t, nil)
		ids[reqID] = true
	}

	if len(ids) != 50 {
		t.Errorf("unique IDs = %d, want 50", len(ids))
	}
}

func TestIDsFromContext_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty string", id)
	}
	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty string", id)
	}
}

func TestWithIDs_StoresInContext(t *testing.T) {
	t.Parallel()

	ctx := middleware.WithRequestID(context.Background(), "req-1")
	ctx = middleware.WithCorrelationID(ctx, "corr-1")

	if got := middleware.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "req-1")
	}
	if got := middleware.CorrelationIDFromContext(ctx); got != "corr-1" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", got, "corr-1")
	}
}
