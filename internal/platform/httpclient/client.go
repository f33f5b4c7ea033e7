// Package httpclient is the outbound transport for the Notion API. Every
// request passes through, in order:
//
//	circuit breaker → rate limiter → ID forwarding → client span → retry
//
// Build one client per downstream and share it:
//
//	client := httpclient.New(&cfg.Client, "notion", metrics, logger)
//	resp, err := client.Do(ctx, req)
//
// Page creation and other writes that must not be replayed once they reach
// the server are marked with WithNonIdempotent; they are retried only after a
// 429. Inbound middleware propagates its IDs with WithRequestID and
// WithCorrelationID.
package httpclient

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-item-tracker/internal/platform/config"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/go-item-tracker/internal/platform/httpclient"

// retryConfig mirrors config.RetryConfig so the retry loop does not depend
// on the config package.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client sends requests to one downstream service. It is safe for
// concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil disables client-side throttling
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a client for serviceName, which labels spans, metrics and the
// breaker. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     newBreaker(&cfg.CircuitBreaker, serviceName, logger),
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// BaseURL returns the configured API root, e.g. "https://api.notion.com".
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream identifier passed to New.
func (c *Client) Name() string {
	return c.serviceName
}

// Do sends req and returns the final response.
//
// On success the caller owns resp.Body. When retries run out on a retryable
// status both resp and err are set and the caller must still close the body.
// A breaker rejection, a limiter wait that outlives ctx, or a network error
// yields a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, abandonedError{err: err}
			}
		}

		forwardIDs(ctx, req.Header)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		err := c.doWithRetry(spanCtx, req.WithContext(spanCtx), &resp)
		endSpan(span, resp, err)
		return struct{}{}, markAbandoned(ctx, err)
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// startSpan opens a client span and injects W3C trace headers into req. Only
// the URL path is recorded; Notion query strings carry cursors.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("url.path", req.URL.Path),
			attribute.String("server.address", req.URL.Host),
			attribute.String("peer.service", c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// outcome classifies a finished call for the result metric attribute.
func outcome(resp *http.Response, err error) string {
	var abandoned abandonedError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.As(err, &abandoned):
		return "canceled"
	case resp == nil:
		return "error"
	case resp.StatusCode == http.StatusTooManyRequests:
		return "rate_limited"
	case resp.StatusCode >= http.StatusBadRequest:
		return "error"
	default:
		return "success"
	}
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(outcome(resp, err)),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}
