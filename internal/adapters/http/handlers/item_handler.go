// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
	"github.com/jsamuelsen11/go-item-tracker/internal/ports"
)

const queryIncludeReadOnly = "include_read_only"

// ItemHandler handles the public item listing and the admin item endpoints.
type ItemHandler struct {
	svc        ports.ItemService
	publicView bool
}

// NewItemHandler creates a new ItemHandler. When publicView is false the
// public listing requires a session.
func NewItemHandler(svc ports.ItemService, publicView bool) *ItemHandler {
	return &ItemHandler{svc: svc, publicView: publicView}
}

// ListViews handles GET /api/public/items.
func (h *ItemHandler) ListViews(w http.ResponseWriter, r *http.Request) {
	if !h.publicView && middleware.SessionFromContext(r.Context()) == "" {
		dto.WriteErrorResponse(w, r, domain.ErrForbidden)
		return
	}

	list, err := h.svc.ListViews(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToViewListResponse(list))
}

// ListItems handles GET /api/admin/items.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	includeReadOnly, err := parseBoolQuery(r, queryIncludeReadOnly)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.ListItems(r.Context(), includeReadOnly)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToItemListResponse(items))
}

// GetItem handles GET /api/admin/items/{id}.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	includeReadOnly, err := parseBoolQuery(r, queryIncludeReadOnly)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	it, err := h.svc.GetItem(r.Context(), id, includeReadOnly)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToItemResponse(it))
}

// CreateItem handles POST /api/admin/items.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateItem(r.Context(), req.ToDraft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToItemResponse(created))
}

// UpdateItem handles PATCH /api/admin/items/{id}.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateItem(r.Context(), id, req)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToItemResponse(updated))
}

// ArchiveItem handles DELETE /api/admin/items/{id}.
func (h *ItemHandler) ArchiveItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.ArchiveItem(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ArchiveResultResponse{ID: id, Archived: true})
}

// ListCollections handles GET /api/admin/collections.
func (h *ItemHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.svc.ListCollections(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCollectionResponses(collections))
}
