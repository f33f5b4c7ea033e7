// Package acl implements the Anti-Corruption Layer that translates between
// Notion API representations and domain types. Resource translators live in
// subpackages (acl/page, acl/property); the request lifecycle and shared
// error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/clients/acl/page"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// RemoteError is a failed Notion API call. It unwraps to the domain sentinel
// chosen from the status code.
type RemoteError struct {
	Status  int
	Code    string
	Message string

	kind error
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code == "" {
		return fmt.Sprintf("notion: status %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("notion: %s (%d): %s", e.Code, e.Status, msg)
}

func (e *RemoteError) Unwrap() error {
	return e.kind
}

// TranslateHTTPError maps a Notion error response to a domain error.
// The body is parsed as a Notion error object when possible.
//
//   - 401, 403 map to domain.ErrUnauthorized
//   - 404 maps to domain.ErrNotFound
//   - every other status maps to domain.ErrTransport
func TranslateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)

	status := resp.StatusCode
	if body.Status != 0 {
		status = body.Status
	}

	var kind error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = domain.ErrUnauthorized
	case http.StatusNotFound:
		kind = domain.ErrNotFound
	default:
		kind = domain.ErrTransport
	}

	return &RemoteError{
		Status:  status,
		Code:    body.Code,
		Message: body.Message,
		kind:    kind,
	}
}

// translateTransportError wraps a failure that produced no usable response,
// such as a network error or an open circuit breaker. The cause stays in the
// chain, so errors.Is still matches context.Canceled.
func translateTransportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrTransport, err)
}

// parseErrorBody reads a Notion error object from the response. Returns an
// empty ErrorDTO if the body is missing or is not an error object.
func parseErrorBody(resp *http.Response) page.ErrorDTO {
	if resp.Body == nil {
		return page.ErrorDTO{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return page.ErrorDTO{}
	}

	var dto page.ErrorDTO
	if err := json.Unmarshal(raw, &dto); err != nil || dto.Object != "error" {
		return page.ErrorDTO{}
	}
	return dto
}
