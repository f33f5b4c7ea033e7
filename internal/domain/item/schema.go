package item

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
)

// Schema maps item fields to the display names of the remote collection's
// properties. Display names are the lookup key on the read path and the
// caller-facing key of updates.
type Schema struct {
	Name            string
	EntryDate       string
	RetirementDate  string
	PurchasePrice   string
	AdditionalValue string
	Note            string
	DailyPrice      string
	ServiceDays     string
}

// DefaultSchema returns the display names of the reference collection.
func DefaultSchema() Schema {
	return Schema{
		Name:            "物品名称",
		EntryDate:       "入役日期",
		RetirementDate:  "退役日期",
		PurchasePrice:   "购买价格",
		AdditionalValue: "附加价值",
		Note:            "备注",
		DailyPrice:      "日均价格",
		ServiceDays:     "服役天数",
	}
}

// DisplayName returns the remote property name for f, or "" if f is unknown.
func (s Schema) DisplayName(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEntryDate:
		return s.EntryDate
	case FieldRetirementDate:
		return s.RetirementDate
	case FieldPurchasePrice:
		return s.PurchasePrice
	case FieldAdditionalValue:
		return s.AdditionalValue
	case FieldNote:
		return s.Note
	case FieldDailyPrice:
		return s.DailyPrice
	case FieldServiceDays:
		return s.ServiceDays
	}
	return ""
}

// FieldOf resolves a display name back to its field.
func (s Schema) FieldOf(displayName string) (Field, bool) {
	for _, f := range Fields() {
		if s.DisplayName(f) == displayName {
			return f, true
		}
	}
	return "", false
}

// Validate checks that every field has a distinct, non-blank display name.
func (s Schema) Validate() error {
	fields := make(map[string]string)
	seen := make(map[string]Field)

	for _, f := range Fields() {
		name := s.DisplayName(f)
		if strings.TrimSpace(name) == "" {
			fields[f.String()] = domain.MsgRequired
			continue
		}
		if other, ok := seen[name]; ok {
			fields[f.String()] = fmt.Sprintf("duplicates display name of %s: %q", other, name)
			continue
		}
		seen[name] = f
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
