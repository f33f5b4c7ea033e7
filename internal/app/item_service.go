// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/go-item-tracker/internal/app/fanout"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-item-tracker/internal/ports"
)

// Compile-time check that ItemService implements ports.ItemService.
var _ ports.ItemService = (*ItemService)(nil)

// maxArchiveWorkers bounds concurrent archive calls. The transport rate
// limiter still applies on top.
const maxArchiveWorkers = 3

// ItemService implements ports.ItemService by orchestrating calls to the
// remote collection through the ItemRepository port. It validates drafts,
// projects raw items into views, and logs per-item warnings.
type ItemService struct {
	repo    ports.ItemRepository
	logger  *slog.Logger
	now     func() time.Time
	loc     *time.Location
	metrics *telemetry.Metrics
}

// Option configures an ItemService.
type Option func(*ItemService)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *ItemService) { s.now = now }
}

// WithLocation sets the timezone in which calendar dates are interpreted.
func WithLocation(loc *time.Location) Option {
	return func(s *ItemService) { s.loc = loc }
}

// WithMetrics records projection warnings and rejections.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *ItemService) { s.metrics = m }
}

// NewItemService creates an ItemService backed by repo. A nil logger is
// replaced with one that discards output.
func NewItemService(repo ports.ItemRepository, logger *slog.Logger, opts ...Option) *ItemService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ItemService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListViews fetches every item and projects it. "Today" is evaluated once
// per call, so all views of one listing share the same default end date.
func (s *ItemService) ListViews(ctx context.Context) (*ports.ViewList, error) {
	s.logger.InfoContext(ctx, "listing item views")

	items, err := s.repo.ListItems(ctx, true)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list items",
			slog.String("operation", "ListViews"),
			slog.Any("error", err),
		)
		return nil, err
	}

	now := s.now().In(s.loc)
	schema := s.repo.Schema()

	out := &ports.ViewList{Views: make([]item.View, 0, len(items))}
	for _, it := range items {
		view, warnings, err := item.Project(it, schema, now)
		for _, w := range warnings {
			s.logger.WarnContext(ctx, "item field dropped",
				slog.String("item_id", w.ItemID),
				slog.String("field", w.Field.String()),
				slog.String("reason", w.Message),
			)
			s.metrics.RecordItemWarning(ctx, w.Field.String())
		}
		out.Warnings = append(out.Warnings, warnings...)

		if err != nil {
			s.logger.WarnContext(ctx, "item rejected",
				slog.String("item_id", it.ID),
				slog.Any("error", err),
			)
			s.metrics.RecordItemRejected(ctx)
			out.Rejected = append(out.Rejected, ports.Rejection{ItemID: it.ID, Err: err})
			continue
		}
		out.Views = append(out.Views, view)
	}

	return out, nil
}

// ListItems returns the raw items of the collection.
func (s *ItemService) ListItems(ctx context.Context, includeReadOnly bool) ([]item.Item, error) {
	s.logger.InfoContext(ctx, "listing items", slog.Bool("include_read_only", includeReadOnly))

	items, err := s.repo.ListItems(ctx, includeReadOnly)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list items",
			slog.String("operation", "ListItems"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return items, nil
}

// GetItem returns a single raw item.
func (s *ItemService) GetItem(ctx context.Context, id string, includeReadOnly bool) (*item.Item, error) {
	s.logger.InfoContext(ctx, "fetching item", slog.String("item_id", id))

	it, err := s.repo.GetItem(ctx, id, includeReadOnly)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch item",
			slog.String("operation", "GetItem"),
			slog.String("item_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return it, nil
}

// CreateItem validates the draft and creates the item.
func (s *ItemService) CreateItem(ctx context.Context, draft *item.Draft) (*item.Item, error) {
	s.logger.InfoContext(ctx, "creating item", slog.String("name", draft.Name))

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateItem(ctx, draft)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create item",
			slog.String("operation", "CreateItem"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateItem writes a partial set of fields.
func (s *ItemService) UpdateItem(ctx context.Context, id string, fields map[string]any) (*item.Item, error) {
	s.logger.InfoContext(ctx, "updating item",
		slog.String("item_id", id),
		slog.Int("fields", len(fields)),
	)

	updated, err := s.repo.UpdateItem(ctx, id, fields)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update item",
			slog.String("operation", "UpdateItem"),
			slog.String("item_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// ArchiveItem archives a single item.
func (s *ItemService) ArchiveItem(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "archiving item", slog.String("item_id", id))

	if err := s.repo.ArchiveItem(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to archive item",
			slog.String("operation", "ArchiveItem"),
			slog.String("item_id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// ArchiveItems archives each id independently using bounded concurrency.
func (s *ItemService) ArchiveItems(ctx context.Context, ids []string) []ports.ArchiveResult {
	s.logger.InfoContext(ctx, "archiving items", slog.Int("count", len(ids)))

	results := fanout.Run(ctx, maxArchiveWorkers, ids, func(ctx context.Context, id string) (struct{}, error) {
		return struct{}{}, s.ArchiveItem(ctx, id)
	})

	out := make([]ports.ArchiveResult, len(ids))
	for i, r := range results {
		out[i] = ports.ArchiveResult{ItemID: ids[i], Err: r.Err}
	}
	return out
}

// ListCollections returns every collection visible to the credential.
func (s *ItemService) ListCollections(ctx context.Context) ([]item.Collection, error) {
	s.logger.InfoContext(ctx, "listing collections")

	collections, err := s.repo.ListCollections(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list collections",
			slog.String("operation", "ListCollections"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return collections, nil
}
