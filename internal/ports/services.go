package ports

import (
	"context"

	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
)

// ItemService defines the service port for item operations.
// Implemented by the application layer; called by inbound adapters (handlers
// and the CLI).
type ItemService interface {
	// ListViews returns the validated projection of every item. Items whose
	// required fields are invalid are left out and counted in Rejected;
	// they never fail the whole listing.
	ListViews(ctx context.Context) (*ViewList, error)

	// ListItems returns the raw items of the collection.
	ListItems(ctx context.Context, includeReadOnly bool) ([]item.Item, error)

	// GetItem returns a single raw item.
	// Returns domain.ErrNotFound if the item does not exist.
	GetItem(ctx context.Context, id string, includeReadOnly bool) (*item.Item, error)

	// CreateItem validates and creates an item.
	// Returns domain.ErrValidation if the draft fails validation.
	CreateItem(ctx context.Context, draft *item.Draft) (*item.Item, error)

	// UpdateItem writes a partial set of display-name keyed fields.
	UpdateItem(ctx context.Context, id string, fields map[string]any) (*item.Item, error)

	// ArchiveItem archives an item.
	ArchiveItem(ctx context.Context, id string) error

	// ArchiveItems archives several items with bounded concurrency. Each
	// archive succeeds or fails independently; results keep input order.
	ArchiveItems(ctx context.Context, ids []string) []ArchiveResult

	// ListCollections returns every collection visible to the credential.
	ListCollections(ctx context.Context) ([]item.Collection, error)
}

// ViewList holds the outcome of projecting every item of the collection.
type ViewList struct {
	Views    []item.View
	Warnings []item.Warning
	Rejected []Rejection
}

// Rejection records an item left out of a ViewList and why.
type Rejection struct {
	ItemID string
	Err    error
}

// ArchiveResult records the outcome of archiving one item. Err is nil on
// success.
type ArchiveResult struct {
	ItemID string
	Err    error
}
