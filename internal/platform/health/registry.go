// Package health aggregates the health checks behind the readiness and admin
// health endpoints. Checks run concurrently, each under its own timeout, and
// their combined result can be cached so that frequent probes do not spend
// the Notion rate limit.
package health

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/go-item-tracker/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// ErrCheckTimeout is reported for a check that outlived its timeout.
var ErrCheckTimeout = errors.New("health check timed out")

// Option configures a Registry.
type Option func(*Registry)

// WithCacheTTL reuses the last result for ttl. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(r *Registry) { r.ttl = ttl }
}

// WithCheckTimeout bounds every individual check. Zero leaves only the
// caller's deadline.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// WithClock replaces time.Now for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// Registry is a [ports.HealthRegistry] safe for concurrent use.
type Registry struct {
	ttl     time.Duration
	timeout time.Duration
	now     func() time.Time
	flight  singleflight.Group

	mu        sync.Mutex
	checkers  []ports.HealthChecker
	cached    map[string]error
	checkedAt time.Time
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker and drops any cached result.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
	r.cached = nil
}

// CheckAll returns the result of every registered check keyed by name; nil
// means healthy. Concurrent callers share one in-flight round of checks. The
// returned map belongs to the caller.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	if results, ok := r.fresh(); ok {
		return results
	}

	v, _, _ := r.flight.Do("all", func() (any, error) {
		return r.run(ctx), nil
	})
	return maps.Clone(v.(map[string]error))
}

func (r *Registry) fresh() (map[string]error, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ttl <= 0 || r.cached == nil || r.now().Sub(r.checkedAt) >= r.ttl {
		return nil, false
	}
	return maps.Clone(r.cached), true
}

func (r *Registry) run(ctx context.Context) map[string]error {
	r.mu.Lock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.Unlock()

	errs := make([]error, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			errs[i] = r.check(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}

	r.mu.Lock()
	r.cached = results
	r.checkedAt = r.now()
	r.mu.Unlock()

	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.timeout <= 0 {
		return c.HealthCheck(ctx)
	}

	ctx, cancel := context.WithTimeoutCause(ctx, r.timeout, ErrCheckTimeout)
	defer cancel()

	err := c.HealthCheck(ctx)
	if err != nil && errors.Is(context.Cause(ctx), ErrCheckTimeout) {
		return fmt.Errorf("%w after %v: %w", ErrCheckTimeout, r.timeout, err)
	}
	return err
}
