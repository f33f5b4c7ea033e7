package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/go-item-tracker/internal/platform/logging"
)

// jitterFraction spreads each delay by up to ±25%.
const jitterFraction = 0.25

// doWithRetry sends req up to maxAttempts times and stores the final
// response in *resp, leaving its body open for the caller. The out
// parameter keeps the bodyclose linter from flagging the helper.
//
// The body is buffered once and replayed on every attempt. Requests marked
// WithNonIdempotent are replayed only after a 429, and a Retry-After header
// on a retryable response lengthens the next wait.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return err
	}
	idempotent := isIdempotent(ctx)

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for attempt := range c.retryCfg.maxAttempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, retryAfter, lastErr); err != nil {
				return err
			}
		}
		switch {
		case len(body) > 0:
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		case body != nil:
			req.Body = http.NoBody
		}

		r, err := c.httpClient.Do(req)
		switch {
		case err != nil:
			if !idempotent || !isRetryable(err) {
				return err
			}
			lastErr, retryAfter = err, 0
			continue
		case !isRetryableStatus(r.StatusCode, idempotent):
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		retryAfter = parseRetryAfter(r.Header.Get("Retry-After"), time.Now())
		if attempt == c.retryCfg.maxAttempts-1 {
			*resp = r
			return lastErr
		}

		// Drain so the connection goes back to the pool.
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}
	return lastErr
}

// bufferBody reads and closes req.Body. A nil body yields nil bytes.
func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// pause waits before the given attempt. A Retry-After longer than the
// computed backoff wins, capped at maxInterval.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, retryAfter time.Duration, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)
	if retryAfter > delay {
		delay = min(retryAfter, c.retryCfg.maxInterval)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying Notion request",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Duration("retry_after", retryAfter),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseRetryAfter accepts delay seconds, fractional ones included, or an
// HTTP date. Anything unusable or already past is zero.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.ParseFloat(v, 64); err == nil {
		if secs <= 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
			return 0
		}
		return time.Duration(secs * float64(time.Second))
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// backoff returns the jittered delay before retry number attempt (1 is the
// first retry). The exponential base is capped at maxInterval before jitter.
func backoff(attempt int, cfg retryConfig) time.Duration {
	base := min(
		float64(cfg.initialInterval)*math.Pow(cfg.multiplier, float64(attempt-1)),
		float64(cfg.maxInterval),
	)
	spread := base * jitterFraction * (2*secureRandFloat64() - 1)
	return time.Duration(max(base+spread, 0))
}

// secureRandFloat64 returns a uniform value in [0, 1) built from the top 53
// bits of a crypto/rand word.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// isRetryable reports whether a transport error may succeed on replay. The
// caller giving up is final; everything else, network errors included, is
// worth another attempt.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether a response status warrants a retry.
// Notion answers 429 before doing any work, so it is always safe; a 5xx may
// follow an applied write and is retried only for idempotent requests.
func isRetryableStatus(code int, idempotent bool) bool {
	return code == http.StatusTooManyRequests || (idempotent && code >= http.StatusInternalServerError)
}
