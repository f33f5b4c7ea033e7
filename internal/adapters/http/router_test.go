package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/go-item-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
	"github.com/jsamuelsen11/go-item-tracker/internal/ports"
	"github.com/jsamuelsen11/go-item-tracker/mocks"
)

// stubAuth treats the cookie value "valid" as an admin session.
type stubAuth struct{}

func (stubAuth) FromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie("access_token_cookie"); err == nil && c.Value == "valid" {
		return "admin", nil
	}
	return "", errors.New("no session")
}

func (stubAuth) Login(_, _ string) (string, error) { return "valid", nil }
func (stubAuth) SetCookie(_ http.ResponseWriter, _ string) {}
func (stubAuth) ClearCookie(_ http.ResponseWriter) {}

type testRouter struct {
	handler  http.Handler
	svc      *mocks.MockItemService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, publicView bool, staticDir string, mws ...func(http.Handler) http.Handler) testRouter {
	t.Helper()
	svc := mocks.NewMockItemService(t)
	registry := mocks.NewMockHealthRegistry(t)

	h := adapthttp.Handlers{
		Items:  handlers.NewItemHandler(svc, publicView),
		Auth:   handlers.NewAuthHandler(stubAuth{}, nil),
		Health: handlers.NewHealthHandler(registry),
	}
	cfg := adapthttp.RouterConfig{Sessions: stubAuth{}, StaticDir: staticDir}

	return testRouter{
		handler:  adapthttp.NewRouter(h, cfg, mws...),
		svc:      svc,
		registry: registry,
	}
}

func withSession(r *http.Request) *http.Request {
	r.AddCookie(&http.Cookie{Name: "access_token_cookie", Value: "valid"})
	return r
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, true, "")

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/public/login"},
		{http.MethodPost, "/api/public/logout"},
		{http.MethodGet, "/api/public/items"},
		{http.MethodGet, "/api/admin/health"},
		{http.MethodGet, "/api/admin/collections"},
		{http.MethodGet, "/api/admin/items"},
		{http.MethodPost, "/api/admin/items"},
		{http.MethodGet, "/api/admin/items/{id}"},
		{http.MethodPatch, "/api/admin/items/{id}"},
		{http.MethodDelete, "/api/admin/items/{id}"},
	}

	chiRouter, ok := tr.handler.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	tr := newTestRouter(t, true, "", testMW)
	tr.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_AdminRequiresSession(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, true, "")
	tr.svc.EXPECT().ListItems(mock.Anything, false).Return([]item.Item{}, nil).Once()

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/items", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("without session: status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	rec = httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/api/admin/items", nil)))
	if rec.Code != http.StatusOK {
		t.Errorf("with session: status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_PublicViewToggle(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, false, "")
	tr.svc.EXPECT().ListViews(mock.Anything).Return(&ports.ViewList{}, nil).Once()

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/public/items", nil))
	if rec.Code != http.StatusForbidden {
		t.Errorf("anonymous: status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	rec = httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/api/public/items", nil)))
	if rec.Code != http.StatusOK {
		t.Errorf("with session: status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_StaticDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>items</h1>"), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	tr := newTestRouter(t, true, dir)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "<h1>items</h1>" {
		t.Errorf("body = %q, want index.html content", body)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, true, "")

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t, true, "")

	rec := httptest.NewRecorder()
	req := withSession(httptest.NewRequest(http.MethodPut, "/api/admin/items", nil))
	tr.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
