// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
	"github.com/jsamuelsen11/go-item-tracker/internal/ports"
)

// ItemResponse represents a raw item keyed by property display name.
type ItemResponse struct {
	ID         string         `json:"id"`
	Archived   bool           `json:"archived"`
	URL        string         `json:"url,omitempty"`
	Properties map[string]any `json:"properties"`
}

// ItemListResponse represents a list of raw items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Count int            `json:"count"`
}

// ToItemResponse converts a domain Item to an HTTP response DTO. Date
// ranges are flattened to {"start","end"} objects.
func ToItemResponse(it *item.Item) ItemResponse {
	props := make(map[string]any, len(it.Properties))
	for name, v := range it.Properties {
		props[name] = plainValue(v)
	}
	return ItemResponse{
		ID:         it.ID,
		Archived:   it.Archived,
		URL:        it.URL,
		Properties: props,
	}
}

// ToItemListResponse converts a slice of domain Items to a list response.
func ToItemListResponse(items []item.Item) ItemListResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = ToItemResponse(&items[i])
	}
	return ItemListResponse{Items: out, Count: len(out)}
}

type dateRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func plainValue(v any) any {
	switch x := v.(type) {
	case item.DateRange:
		return dateRangeResponse{Start: x.Start, End: x.End}
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}

// ItemViewResponse represents a validated item with its derived fields.
// Dates use the YYYY-MM-DD form.
type ItemViewResponse struct {
	ID               string   `json:"id"`
	Archived         bool     `json:"archived"`
	Name             string   `json:"name"`
	PurchasePrice    float64  `json:"purchase_price"`
	ServiceStartDate *string  `json:"service_start_date"`
	ServiceEndDate   string   `json:"service_end_date"`
	DailyPrice       *float64 `json:"daily_price"`
	ServiceDays      *int     `json:"service_days"`
	Note             *string  `json:"note"`
	AdditionalValue  *float64 `json:"additional_value"`
}

// ToItemViewResponse converts a domain View to an HTTP response DTO.
func ToItemViewResponse(v *item.View) ItemViewResponse {
	resp := ItemViewResponse{
		ID:              v.ID,
		Archived:        v.Archived,
		Name:            v.Name,
		PurchasePrice:   v.PurchasePrice,
		ServiceEndDate:  v.ServiceEndDate.Format(item.DateLayout),
		DailyPrice:      v.DailyPrice,
		ServiceDays:     v.ServiceDays,
		Note:            v.Note,
		AdditionalValue: v.AdditionalValue,
	}
	if v.ServiceStartDate != nil {
		s := v.ServiceStartDate.Format(item.DateLayout)
		resp.ServiceStartDate = &s
	}
	return resp
}

// ViewListResponse represents the public item listing.
type ViewListResponse struct {
	Items    []ItemViewResponse `json:"items"`
	Count    int                `json:"count"`
	Rejected int                `json:"rejected"`
}

// ToViewListResponse converts a ports.ViewList to the public listing DTO.
// Rejected items are only counted; their details stay in the server log.
func ToViewListResponse(list *ports.ViewList) ViewListResponse {
	items := make([]ItemViewResponse, len(list.Views))
	for i := range list.Views {
		items[i] = ToItemViewResponse(&list.Views[i])
	}
	return ViewListResponse{
		Items:    items,
		Count:    len(items),
		Rejected: len(list.Rejected),
	}
}

// LoginResponse represents the outcome of a login or logout.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CollectionResponse represents a collection visible to the credential.
type CollectionResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ToCollectionResponses converts domain Collections to response DTOs.
func ToCollectionResponses(cs []item.Collection) []CollectionResponse {
	out := make([]CollectionResponse, len(cs))
	for i, c := range cs {
		out[i] = CollectionResponse{ID: c.ID, Title: c.Title}
	}
	return out
}

// ArchiveResultResponse represents the outcome of archiving one item.
type ArchiveResultResponse struct {
	ID       string `json:"id"`
	Archived bool   `json:"archived"`
	Error    string `json:"error,omitempty"`
}

// ToArchiveResultResponses converts archive results to response DTOs.
func ToArchiveResultResponses(results []ports.ArchiveResult) []ArchiveResultResponse {
	out := make([]ArchiveResultResponse, len(results))
	for i, r := range results {
		out[i] = ArchiveResultResponse{ID: r.ItemID, Archived: r.Err == nil}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	return out
}

// Health check outcomes.
const (
	HealthOK          = "ok"
	HealthReady       = "ready"
	HealthNotReady    = "not_ready"
	HealthUnavailable = "unavailable"
)

// HealthResponse is the body of the readiness and admin health endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ToHealthResponse summarizes registry results. Failing checks show their
// error text only when detailed is set; otherwise they read "unavailable".
func ToHealthResponse(results map[string]error, detailed bool) HealthResponse {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		switch {
		case err == nil:
			resp.Checks[name] = HealthOK
			continue
		case detailed:
			resp.Checks[name] = err.Error()
		default:
			resp.Checks[name] = HealthUnavailable
		}
		resp.Status = HealthNotReady
	}
	return resp
}

// Healthy reports whether every check passed.
func (h HealthResponse) Healthy() bool {
	return h.Status == HealthReady
}
