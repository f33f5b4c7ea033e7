package acl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/clients/acl/page"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
	"github.com/jsamuelsen11/go-item-tracker/internal/ports"
)

// Name identifies the repository in a [ports.HealthRegistry]. It matches the
// service name of the underlying transport.
func (r *ItemRepository) Name() string {
	return "notion"
}

// HealthCheck reports the circuit breaker state of the Notion transport. No
// network call is made.
func (r *ItemRepository) HealthCheck(ctx context.Context) error {
	return r.req.HealthCheck(ctx)
}

// SchemaCheck returns a checker that re-reads the bound database and reports
// drift from the schema captured at startup: a writable property that was
// removed, renamed, retyped or replaced by a different property id. Each
// check costs one API call, so register it with a cached registry.
func (r *ItemRepository) SchemaCheck() ports.HealthChecker {
	return schemaCheck{repo: r}
}

type schemaCheck struct {
	repo *ItemRepository
}

func (schemaCheck) Name() string {
	return "notion-schema"
}

func (c schemaCheck) HealthCheck(ctx context.Context) error {
	var db page.DatabaseDTO
	path := "/v1/databases/" + url.PathEscape(c.repo.databaseID)
	if err := c.repo.req.Do(ctx, http.MethodGet, path, nil, &db); err != nil {
		return fmt.Errorf("reading database schema: %w", err)
	}

	current, err := bindSchema(&db, c.repo.schema)
	if err != nil {
		return err
	}

	var drift []string
	for f, was := range c.repo.bound {
		if now := current[f]; now.id != was.id {
			drift = append(drift, fmt.Sprintf("%s: property %q changed id from %s to %s", f, was.name, was.id, now.id))
		}
	}
	if len(drift) > 0 {
		sort.Strings(drift)
		return fmt.Errorf("%w: restart to rebind: %s", domain.ErrConfiguration, strings.Join(drift, "; "))
	}
	return nil
}
