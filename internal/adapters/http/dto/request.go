package dto

import (
	"errors"
	"maps"
	"strings"

	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
	"github.com/jsamuelsen11/go-item-tracker/internal/domain/item"
)

// LoginRequest represents the JSON body of an admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = domain.MsgRequired
	}
	if r.Password == "" {
		fields["password"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateItemRequest represents the JSON body for creating an item.
// Optional fields are pointers; nil means "not provided".
type CreateItemRequest struct {
	Name            string   `json:"name"`
	EntryDate       string   `json:"entry_date"`
	PurchasePrice   *float64 `json:"purchase_price"`
	AdditionalValue *float64 `json:"additional_value,omitempty"`
	RetirementDate  *string  `json:"retirement_date,omitempty"`
	Note            *string  `json:"note,omitempty"`
}

// Validate checks the request shape and the draft's business rules.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateItemRequest) Validate() error {
	fields := make(map[string]string)

	var verr *domain.ValidationError
	if errors.As(r.ToDraft().Validate(), &verr) {
		maps.Copy(fields, verr.Fields)
	}
	if r.PurchasePrice == nil {
		fields[item.FieldPurchasePrice.String()] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDraft converts the request to a domain Draft.
func (r *CreateItemRequest) ToDraft() *item.Draft {
	d := &item.Draft{
		Name:            strings.TrimSpace(r.Name),
		EntryDate:       strings.TrimSpace(r.EntryDate),
		AdditionalValue: r.AdditionalValue,
		Note:            r.Note,
	}
	if r.PurchasePrice != nil {
		d.PurchasePrice = *r.PurchasePrice
	}
	if r.RetirementDate != nil {
		d.RetirementDate = strings.TrimSpace(*r.RetirementDate)
	}
	return d
}

// UpdateItemRequest is a partial update keyed by the collection's property
// display names. A null value clears the property.
type UpdateItemRequest map[string]any

// Validate rejects an empty update.
func (r UpdateItemRequest) Validate() error {
	if len(r) == 0 {
		return domain.ErrNoChanges
	}
	return nil
}
