// Package page implements the Anti-Corruption Layer translators for Notion
// page and database resources.
package page

import "github.com/jsamuelsen11/go-item-tracker/internal/adapters/clients/acl/property"

// Object tags carried in the "object" field of Notion resources.
const (
	ObjectPage     = "page"
	ObjectDatabase = "database"
	ObjectList     = "list"
)

// PageDTO matches the Notion page object.
type PageDTO struct {
	Object     string                       `json:"object"`
	ID         string                       `json:"id"`
	Parent     ParentDTO                    `json:"parent"`
	Archived   bool                         `json:"archived"`
	InTrash    bool                         `json:"in_trash"`
	URL        string                       `json:"url"`
	Properties map[string]property.Property `json:"properties"`
}

// ParentDTO identifies the database a page belongs to.
type ParentDTO struct {
	Type       string `json:"type,omitempty"`
	DatabaseID string `json:"database_id"`
}

// DatabaseDTO matches the Notion database object, including its property
// schema keyed by display name.
type DatabaseDTO struct {
	Object     string                       `json:"object"`
	ID         string                       `json:"id"`
	Title      []property.RichText          `json:"title"`
	URL        string                       `json:"url"`
	Archived   bool                         `json:"archived"`
	Properties map[string]SchemaPropertyDTO `json:"properties"`
}

// SchemaPropertyDTO describes one column of a database.
type SchemaPropertyDTO struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Type property.Type `json:"type"`
}

// QueryRequestDTO matches the body of POST /v1/databases/{id}/query.
type QueryRequestDTO struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

// PageListResponseDTO is one page of a database query result.
type PageListResponseDTO struct {
	Object     string    `json:"object"`
	Results    []PageDTO `json:"results"`
	HasMore    bool      `json:"has_more"`
	NextCursor *string   `json:"next_cursor"`
}

// SearchRequestDTO matches the body of POST /v1/search.
type SearchRequestDTO struct {
	Filter      *SearchFilterDTO `json:"filter,omitempty"`
	StartCursor string           `json:"start_cursor,omitempty"`
	PageSize    int              `json:"page_size,omitempty"`
}

// SearchFilterDTO restricts a search to one object kind.
type SearchFilterDTO struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// DatabaseListResponseDTO is one page of a database search result.
type DatabaseListResponseDTO struct {
	Object     string        `json:"object"`
	Results    []DatabaseDTO `json:"results"`
	HasMore    bool          `json:"has_more"`
	NextCursor *string       `json:"next_cursor"`
}

// CreatePageRequestDTO matches the body of POST /v1/pages. Properties are
// keyed by property id.
type CreatePageRequestDTO struct {
	Parent     ParentDTO                   `json:"parent"`
	Properties map[string]property.Payload `json:"properties"`
}

// UpdatePageRequestDTO matches the body of PATCH /v1/pages/{id}.
// A nil Archived leaves the archive state untouched.
type UpdatePageRequestDTO struct {
	Properties map[string]property.Payload `json:"properties,omitempty"`
	Archived   *bool                       `json:"archived,omitempty"`
}

// ErrorDTO matches the Notion error object.
type ErrorDTO struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
