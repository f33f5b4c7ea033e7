package page

import (
	"errors"
	"strings"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/clients/acl/property"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
)

// ToDomainItem converts a Notion page to a domain Item.
//
// Properties with no value are omitted. Computed properties (formula, rollup,
// created/edited metadata) are omitted unless includeReadOnly is set. The
// names of properties whose type cannot be decoded are returned in skipped
// so the caller can log them; they never fail the conversion.
func ToDomainItem(dto *PageDTO, includeReadOnly bool) (it item.Item, skipped []string) {
	it = item.Item{
		ID:         dto.ID,
		Archived:   dto.Archived || dto.InTrash,
		URL:        dto.URL,
		Properties: make(map[string]any, len(dto.Properties)),
	}

	for name, prop := range dto.Properties {
		if !includeReadOnly && prop.Type.ReadOnly() {
			continue
		}
		v, err := property.Decode(prop)
		if err != nil {
			if errors.Is(err, property.ErrUnsupportedType) {
				skipped = append(skipped, name)
			}
			continue
		}
		if v == nil {
			continue
		}
		it.Properties[name] = toDomainValue(v)
	}

	return it, skipped
}

// ToDomainItemList converts every page of a query result.
func ToDomainItemList(dto PageListResponseDTO, includeReadOnly bool) (items []item.Item, skipped []string) {
	items = make([]item.Item, 0, len(dto.Results))
	for i := range dto.Results {
		it, s := ToDomainItem(&dto.Results[i], includeReadOnly)
		items = append(items, it)
		skipped = append(skipped, s...)
	}
	return items, skipped
}

// ToDomainCollection converts a Notion database to a domain Collection. The
// title is the concatenated plain text of the database title.
func ToDomainCollection(dto *DatabaseDTO) item.Collection {
	var b strings.Builder
	for _, r := range dto.Title {
		b.WriteString(r.PlainText)
	}
	return item.Collection{ID: dto.ID, Title: b.String()}
}

// ToDomainCollectionList converts the database entries of a search result.
// Results of any other object kind are ignored.
func ToDomainCollectionList(dto DatabaseListResponseDTO) []item.Collection {
	out := make([]item.Collection, 0, len(dto.Results))
	for i := range dto.Results {
		if dto.Results[i].Object != "" && dto.Results[i].Object != ObjectDatabase {
			continue
		}
		out = append(out, ToDomainCollection(&dto.Results[i]))
	}
	return out
}

// ToCreatePageRequest builds the create body for a page in databaseID.
func ToCreatePageRequest(databaseID string, props map[string]property.Payload) CreatePageRequestDTO {
	return CreatePageRequestDTO{
		Parent:     ParentDTO{Type: "database_id", DatabaseID: databaseID},
		Properties: props,
	}
}

// ToUpdatePageRequest builds a property update body.
func ToUpdatePageRequest(props map[string]property.Payload) UpdatePageRequestDTO {
	return UpdatePageRequestDTO{Properties: props}
}

// ToArchivePageRequest builds the body that moves a page to the archive.
func ToArchivePageRequest() UpdatePageRequestDTO {
	archived := true
	return UpdatePageRequestDTO{Archived: &archived}
}

// toDomainValue replaces codec-specific value types with their domain
// counterparts, descending into rollup arrays.
func toDomainValue(v any) any {
	switch val := v.(type) {
	case property.DateRange:
		return item.DateRange{Start: val.Start, End: val.End}
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = toDomainValue(e)
		}
		return out
	default:
		return v
	}
}
