package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/logging"
)

// parseItemID extracts a page id path parameter. Ids are accepted with or
// without hyphens and returned in the canonical hyphenated form.
func parseItemID(r *http.Request, param string) (string, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return "", domain.NewValidationError(param, "must be a page id")
	}
	return id.String(), nil
}

// parseBoolQuery reads an optional boolean query parameter.
func parseBoolQuery(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError("query."+name, "must be a boolean")
	}
	return v, nil
}

// writeJSON sends v with status. The header is already out when encoding
// fails, so the failure is only logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "encoding response failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

// maxJSONBodyBytes caps request bodies. Item pages are small; 1 MiB is far
// above any legitimate property map.
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes one JSON value from the body into dst, writing a
// 400 and returning false when the body is oversized, malformed or followed
// by trailing data.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))

	var msg string
	var tooLarge *http.MaxBytesError
	switch err := dec.Decode(dst); {
	case errors.As(err, &tooLarge):
		msg = fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
	case err != nil:
		msg = "invalid JSON"
	case dec.More():
		msg = "must hold a single JSON value"
	default:
		return true
	}

	dto.WriteErrorResponse(w, r, domain.NewValidationError("body", msg))
	return false
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
