// Package item defines the tracked-item entity, its field schema, and the
// projection that validates raw items and parses their derived fields.
package item

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
)

// DateLayout is the calendar-date form used for entry and retirement dates.
const DateLayout = "2006-01-02"

// Item is a page of the bound collection as read from the remote side.
// Properties are keyed by display name and hold decoded plain values.
type Item struct {
	ID         string
	Archived   bool
	URL        string
	Properties map[string]any
}

// DateRange is a decoded date property that carries both a start and an end.
type DateRange struct {
	Start string
	End   string
}

// Draft holds the input of a create operation.
type Draft struct {
	Name            string
	EntryDate       string
	PurchasePrice   float64
	AdditionalValue *float64
	RetirementDate  string
	Note            *string
}

// Validate checks business rules for the Draft.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (d *Draft) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(d.Name) == "" {
		fields[FieldName.String()] = domain.MsgRequired
	}
	if strings.TrimSpace(d.EntryDate) == "" {
		fields[FieldEntryDate.String()] = domain.MsgRequired
	} else if _, err := time.Parse(DateLayout, strings.TrimSpace(d.EntryDate)); err != nil {
		fields[FieldEntryDate.String()] = "must be a date in YYYY-MM-DD form"
	}
	if rd := strings.TrimSpace(d.RetirementDate); rd != "" {
		if _, err := time.Parse(DateLayout, rd); err != nil {
			fields[FieldRetirementDate.String()] = "must be a date in YYYY-MM-DD form"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Collection is a remote database visible to the integration credential.
type Collection struct {
	ID    string
	Title string
}
