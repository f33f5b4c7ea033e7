package ports

import "context"

// HealthChecker reports on one dependency of the service, such as the
// Notion transport or the schema of the bound database.
type HealthChecker interface {
	// Name is the key the result is reported under, e.g. "notion".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must return
	// promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checkers for the readiness and admin
// health endpoints.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; a nil value is healthy.
	CheckAll(ctx context.Context) map[string]error
}
