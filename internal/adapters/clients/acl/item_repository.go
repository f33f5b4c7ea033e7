package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/clients/acl/page"
	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/clients/acl/property"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/config"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-item-tracker/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ItemRepository = (*ItemRepository)(nil)
	_ ports.HealthChecker  = (*ItemRepository)(nil)
)

// pageSize is the largest page the Notion API serves per call.
const pageSize = 100

// fieldTypes is the property type each writable field must have in the bound
// database.
var fieldTypes = map[item.Field]property.Type{
	item.FieldName:            property.TypeTitle,
	item.FieldEntryDate:       property.TypeDate,
	item.FieldRetirementDate:  property.TypeDate,
	item.FieldPurchasePrice:   property.TypeNumber,
	item.FieldAdditionalValue: property.TypeNumber,
	item.FieldNote:            property.TypeRichText,
}

// boundProperty is a writable field resolved against the database schema.
type boundProperty struct {
	id   string
	name string
	typ  property.Type
}

// ItemRepository is the outbound adapter that stores items as pages of one
// Notion database. It implements [ports.ItemRepository] and
// [ports.HealthChecker].
//
// The database is resolved once at construction. Writes are keyed by the
// stable property id captured from the database schema, so a property renamed
// on the remote side is reported at the next start instead of silently
// desyncing writes.
type ItemRepository struct {
	req        *Requester
	databaseID string
	title      string
	schema     item.Schema
	bound      map[item.Field]boundProperty
	logger     *slog.Logger
}

// NewItemRepository lists the databases visible to the integration, binds the
// one whose id matches cfg.DatabaseID (hyphens ignored on both sides), and
// captures its schema.
//
// Errors:
//   - domain.ErrConfiguration when the token or database id is blank, or a
//     writable field is missing from the database or has the wrong type
//   - domain.ErrNotFound when no visible database matches
//   - domain.ErrUnauthorized or domain.ErrTransport when listing fails
func NewItemRepository(
	ctx context.Context,
	client *httpclient.Client,
	cfg *config.NotionConfig,
	schema item.Schema,
	logger *slog.Logger,
) (*ItemRepository, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, fmt.Errorf("%w: notion token is empty", domain.ErrConfiguration)
	}
	if strings.TrimSpace(cfg.DatabaseID) == "" {
		return nil, fmt.Errorf("%w: notion database id is empty", domain.ErrConfiguration)
	}
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("%w: item properties: %w", domain.ErrConfiguration, err)
	}

	r := &ItemRepository{
		req:    NewRequester(client, cfg.Token, cfg.Version, logger),
		schema: schema,
		logger: logger,
	}

	databases, err := r.searchDatabases(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}

	want := NormalizeID(cfg.DatabaseID)
	for i := range databases {
		if NormalizeID(databases[i].ID) != want {
			continue
		}
		bound, err := bindSchema(&databases[i], schema)
		if err != nil {
			return nil, err
		}
		r.databaseID = databases[i].ID
		r.title = page.ToDomainCollection(&databases[i]).Title
		r.bound = bound
		logger.InfoContext(ctx, "bound notion database",
			slog.String("database_id", r.databaseID),
			slog.String("title", r.title),
		)
		return r, nil
	}

	return nil, fmt.Errorf("database %s is not shared with the integration: %w", cfg.DatabaseID, domain.ErrNotFound)
}

// NormalizeID strips hyphens and lowercases a Notion id so that the dashed
// and compact forms compare equal.
func NormalizeID(id string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(id), "-", ""))
}

// bindSchema resolves every writable field to a property of db.
func bindSchema(db *page.DatabaseDTO, schema item.Schema) (map[item.Field]boundProperty, error) {
	bound := make(map[item.Field]boundProperty, len(fieldTypes))
	var problems []string

	for _, f := range item.WritableFields() {
		name := schema.DisplayName(f)
		want := fieldTypes[f]

		col, ok := db.Properties[name]
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("%s: property %q is missing", f, name))
		case col.Type != want:
			problems = append(problems, fmt.Sprintf("%s: property %q is %s, want %s", f, name, col.Type, want))
		default:
			id := col.ID
			if id == "" {
				id = name
			}
			bound[f] = boundProperty{id: id, name: name, typ: col.Type}
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, fmt.Errorf("%w: database %s schema: %s",
			domain.ErrConfiguration, db.ID, strings.Join(problems, "; "))
	}
	return bound, nil
}

// DatabaseID returns the id of the bound database as the remote returned it.
func (r *ItemRepository) DatabaseID() string {
	return r.databaseID
}

// Title returns the title of the bound database.
func (r *ItemRepository) Title() string {
	return r.title
}

// Schema returns the display names the repository is bound to.
func (r *ItemRepository) Schema() item.Schema {
	return r.schema
}

// ListItems pages through POST /v1/databases/{id}/query until the cursor is
// exhausted.
func (r *ItemRepository) ListItems(ctx context.Context, includeReadOnly bool) ([]item.Item, error) {
	path := "/v1/databases/" + url.PathEscape(r.databaseID) + "/query"

	var (
		items  []item.Item
		cursor string
	)
	for {
		var dto page.PageListResponseDTO
		body := page.QueryRequestDTO{StartCursor: cursor, PageSize: pageSize}
		if err := r.req.Do(ctx, http.MethodPost, path, body, &dto); err != nil {
			return nil, err
		}

		batch, skipped := page.ToDomainItemList(dto, includeReadOnly)
		r.logSkipped(ctx, skipped)
		items = append(items, batch...)

		if !dto.HasMore || dto.NextCursor == nil || *dto.NextCursor == "" {
			break
		}
		cursor = *dto.NextCursor
	}

	if items == nil {
		items = []item.Item{}
	}
	return items, nil
}

// GetItem fetches GET /v1/pages/{id}. Pages of other databases are reported
// as not found.
func (r *ItemRepository) GetItem(ctx context.Context, id string, includeReadOnly bool) (*item.Item, error) {
	dto, err := r.getPage(ctx, id)
	if err != nil {
		return nil, err
	}

	it, skipped := page.ToDomainItem(dto, includeReadOnly)
	r.logSkipped(ctx, skipped)
	return &it, nil
}

// CreateItem sends POST /v1/pages with the draft's fields. Optional fields
// are written only when set; a blank retirement date is left out. The call
// is marked non-idempotent so the transport does not replay it after a
// server error.
func (r *ItemRepository) CreateItem(ctx context.Context, draft *item.Draft) (*item.Item, error) {
	values := map[item.Field]any{
		item.FieldName:          draft.Name,
		item.FieldEntryDate:     draft.EntryDate,
		item.FieldPurchasePrice: draft.PurchasePrice,
	}
	if draft.AdditionalValue != nil {
		values[item.FieldAdditionalValue] = *draft.AdditionalValue
	}
	if strings.TrimSpace(draft.RetirementDate) != "" {
		values[item.FieldRetirementDate] = draft.RetirementDate
	}
	if draft.Note != nil {
		values[item.FieldNote] = *draft.Note
	}

	props, err := r.encode(values)
	if err != nil {
		return nil, err
	}

	var dto page.PageDTO
	body := page.ToCreatePageRequest(r.databaseID, props)
	if err := r.req.Do(httpclient.WithNonIdempotent(ctx), http.MethodPost, "/v1/pages", body, &dto); err != nil {
		return nil, err
	}

	it, _ := page.ToDomainItem(&dto, false)
	return &it, nil
}

// UpdateItem sends PATCH /v1/pages/{id} with the encoded fields. Unknown
// keys are reported before any value is encoded.
func (r *ItemRepository) UpdateItem(ctx context.Context, id string, fields map[string]any) (*item.Item, error) {
	values := make(map[item.Field]any, len(fields))
	var unknown []string
	for name, v := range fields {
		f, ok := r.schema.FieldOf(name)
		if !ok || !f.Writable() {
			unknown = append(unknown, name)
			continue
		}
		values[f] = v
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %q", domain.ErrUnrecognizedField, unknown)
	}
	if len(values) == 0 {
		return nil, domain.ErrNoChanges
	}

	props, err := r.encode(values)
	if err != nil {
		return nil, err
	}

	var dto page.PageDTO
	path := "/v1/pages/" + url.PathEscape(id)
	if err := r.req.Do(ctx, http.MethodPatch, path, page.ToUpdatePageRequest(props), &dto); err != nil {
		return nil, err
	}

	it, _ := page.ToDomainItem(&dto, false)
	return &it, nil
}

// ArchiveItem sends PATCH /v1/pages/{id} with archived set.
func (r *ItemRepository) ArchiveItem(ctx context.Context, id string) error {
	path := "/v1/pages/" + url.PathEscape(id)
	return r.req.Do(ctx, http.MethodPatch, path, page.ToArchivePageRequest(), nil)
}

// ListCollections returns every database visible to the integration.
func (r *ItemRepository) ListCollections(ctx context.Context) ([]item.Collection, error) {
	databases, err := r.searchDatabases(ctx)
	if err != nil {
		return nil, err
	}
	return page.ToDomainCollectionList(page.DatabaseListResponseDTO{Results: databases}), nil
}

// searchDatabases pages through POST /v1/search filtered to databases.
func (r *ItemRepository) searchDatabases(ctx context.Context) ([]page.DatabaseDTO, error) {
	var (
		databases []page.DatabaseDTO
		cursor    string
	)
	for {
		var dto page.DatabaseListResponseDTO
		body := page.SearchRequestDTO{
			Filter:      &page.SearchFilterDTO{Property: "object", Value: page.ObjectDatabase},
			StartCursor: cursor,
			PageSize:    pageSize,
		}
		if err := r.req.Do(ctx, http.MethodPost, "/v1/search", body, &dto); err != nil {
			return nil, err
		}
		for i := range dto.Results {
			if dto.Results[i].Object == "" || dto.Results[i].Object == page.ObjectDatabase {
				databases = append(databases, dto.Results[i])
			}
		}

		if !dto.HasMore || dto.NextCursor == nil || *dto.NextCursor == "" {
			return databases, nil
		}
		cursor = *dto.NextCursor
	}
}

func (r *ItemRepository) getPage(ctx context.Context, id string) (*page.PageDTO, error) {
	var dto page.PageDTO
	if err := r.req.Do(ctx, http.MethodGet, "/v1/pages/"+url.PathEscape(id), nil, &dto); err != nil {
		return nil, err
	}
	if dto.Parent.DatabaseID != "" && NormalizeID(dto.Parent.DatabaseID) != NormalizeID(r.databaseID) {
		return nil, fmt.Errorf("page %s is not in the bound database: %w", id, domain.ErrNotFound)
	}
	return &dto, nil
}

func (r *ItemRepository) logSkipped(ctx context.Context, skipped []string) {
	if len(skipped) == 0 {
		return
	}
	r.logger.DebugContext(ctx, "skipped properties of unsupported type",
		slog.Any("properties", skipped),
	)
}

// encode converts field values to payloads keyed by bound property id. Fields
// are visited in item.WritableFields order so the first failing field is the
// same on every call.
func (r *ItemRepository) encode(values map[item.Field]any) (map[string]property.Payload, error) {
	props := make(map[string]property.Payload, len(values))
	for _, f := range item.WritableFields() {
		v, ok := values[f]
		if !ok {
			continue
		}
		b := r.bound[f]
		p, err := property.Encode(v, b.typ)
		if err != nil {
			return nil, fieldError(b.name, b.typ, err)
		}
		props[b.id] = p
	}
	return props, nil
}

// fieldError attaches the display name to codec errors that do not carry
// one. Encode keys validation messages by the target type.
func fieldError(name string, t property.Type, err error) error {
	var ferr *domain.FormatError
	if errors.As(err, &ferr) && ferr.Field == "" {
		return &domain.FormatError{Field: name, Value: ferr.Value, Want: ferr.Want}
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		if msg, ok := verr.Fields[string(t)]; ok {
			return domain.NewValidationError(name, msg)
		}
	}
	return fmt.Errorf("%s: %w", name, err)
}
