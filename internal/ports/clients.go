package ports

import (
	"context"

	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
)

// ItemRepository defines the client port for the remote collection that
// stores items. Implemented by the ACL adapter; called by the application
// layer. The repository is bound to one collection at construction.
//
// Property keys of returned items and of UpdateItem are display names.
type ItemRepository interface {
	// ListItems returns every page of the bound collection in remote order.
	// Computed properties are included only when includeReadOnly is set.
	ListItems(ctx context.Context, includeReadOnly bool) ([]item.Item, error)

	// GetItem returns a single item by ID.
	// Returns domain.ErrNotFound if the page does not exist or belongs to
	// another collection.
	GetItem(ctx context.Context, id string, includeReadOnly bool) (*item.Item, error)

	// CreateItem writes draft as a new page and returns the created item.
	CreateItem(ctx context.Context, draft *item.Draft) (*item.Item, error)

	// UpdateItem writes the given display-name keyed values and returns the
	// updated item. A nil or blank value clears the property.
	// Returns domain.ErrUnrecognizedField for keys outside the writable set
	// and domain.ErrNoChanges when fields is empty.
	UpdateItem(ctx context.Context, id string, fields map[string]any) (*item.Item, error)

	// ArchiveItem moves the item to the archive. There is no unarchive.
	ArchiveItem(ctx context.Context, id string) error

	// ListCollections returns every collection visible to the credential.
	ListCollections(ctx context.Context) ([]item.Collection, error)

	// Schema returns the display names the repository is bound to.
	Schema() item.Schema
}
