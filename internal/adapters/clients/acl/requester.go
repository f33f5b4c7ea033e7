package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-item-tracker/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for Notion calls:
// request creation, authentication and version headers, JSON marshaling,
// execution via httpclient.Client, response body cleanup, status code
// validation, error translation, and JSON decoding.
type Requester struct {
	client  *httpclient.Client
	token   string
	version string
	logger  *slog.Logger
}

// NewRequester creates a Requester that authenticates with token and pins
// the Notion-Version header to version.
func NewRequester(client *httpclient.Client, token, version string, logger *slog.Logger) *Requester {
	return &Requester{client: client, token: token, version: version, logger: logger}
}

// Do executes an HTTP request against the configured base URL.
//
// It marshals reqBody to JSON (if non-nil), sends the request, and decodes
// a 2xx response body into respBody (if non-nil). Other statuses are passed
// to TranslateHTTPError; failures without a response and undecodable bodies
// wrap domain.ErrTransport.
func (r *Requester) Do(ctx context.Context, method, path string, reqBody, respBody any) error {
	switch method {
	case http.MethodGet:
		return r.send(ctx, method, path, nil, respBody)
	case http.MethodPost, http.MethodPatch:
		body, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		return r.send(ctx, method, path, body, respBody)
	default:
		return fmt.Errorf("unsupported HTTP method: %s", method)
	}
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// HealthCheck reports the circuit breaker state of the underlying client.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *Requester) send(ctx context.Context, method, path string, body []byte, respBody any) error {
	url := r.client.BaseURL() + path

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Notion-Version", r.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(ctx, req, respBody)
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(ctx context.Context, req *http.Request, respBody any) error {
	op := req.Method + " " + req.URL.Path

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are exhausted
		// on a retryable status (e.g. 429 or 5xx). In that case, translate the
		// Notion error body rather than returning the raw retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			return TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "notion request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
		return translateTransportError(op, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", translateErr),
		)
		return translateErr
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return translateTransportError(op, fmt.Errorf("decoding response: %w", err))
		}
	}

	return nil
}
