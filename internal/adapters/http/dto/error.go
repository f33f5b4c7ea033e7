package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/logging"
)

// ErrAuthenticationRequired is returned to callers without a valid session.
// It is distinct from domain.ErrUnauthorized, which reports that the remote
// collection rejected this service's own credential.
var ErrAuthenticationRequired = errors.New("authentication required")

// ErrInternal reports a failure the caller has already logged, such as a
// recovered panic. WriteErrorResponse does not log it again.
var ErrInternal = errors.New("internal server error")

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level error within an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusFor lists the error mapping in match order. A rejected remote
// credential is the service's fault, so domain.ErrUnauthorized maps to 502.
var statusFor = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrFormat, http.StatusBadRequest},
	{domain.ErrUnrecognizedField, http.StatusBadRequest},
	{ErrAuthenticationRequired, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrUnsupportedOperation, http.StatusUnprocessableEntity},
	{domain.ErrUnauthorized, http.StatusBadGateway},
	{domain.ErrTransport, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// internalDetail replaces the message of unmapped errors, which may carry
// configuration or stack details.
const internalDetail = "the server could not complete the request"

func statusOf(err error) int {
	for _, m := range statusFor {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem document for err. Instance is the
// request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusOf(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = internalDetail
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	var ferr *domain.FormatError
	switch {
	case errors.As(err, &verr):
		resp.Errors = fieldDetails(verr.Fields)
	case errors.As(err, &ferr):
		resp.Errors = []ErrorDetail{{
			Location: "body." + ferr.Field,
			Message:  "must be a valid " + ferr.Want,
			Value:    ferr.Value,
		}}
	}

	return resp
}

// WriteErrorResponse writes err as application/problem+json. Unmapped
// errors are logged in full since their detail is withheld from the body.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	logger := logging.FromContext(r.Context())
	if resp.Status == http.StatusInternalServerError && !errors.Is(err, ErrInternal) {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logger.WarnContext(r.Context(), "encoding problem response failed", slog.Any("error", encErr))
	}
}

// fieldDetails turns validation fields into details ordered by location.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
