package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-tracker/internal/ports"
)

// HealthHandler serves the probe endpoints and the admin health report.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It never consults the registry.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": dto.HealthOK})
}

// Readiness handles GET /health/ready: 200 when every check passes, 503
// otherwise. Failure causes stay private.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, false)
}

// Details handles GET /api/admin/health. Same outcome as Readiness, with
// each failing check's error text.
func (h *HealthHandler) Details(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, true)
}

func (h *HealthHandler) report(w http.ResponseWriter, r *http.Request, detailed bool) {
	resp := dto.ToHealthResponse(h.registry.CheckAll(r.Context()), detailed)

	code := http.StatusOK
	if !resp.Healthy() {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}
