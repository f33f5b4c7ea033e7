package property

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedType marks a property whose type tag the codec cannot decode.
// Callers on the read path skip such properties instead of failing.
var ErrUnsupportedType = errors.New("unsupported property type")

// Decode converts a remote property into a plain value.
//
// The returned value is one of string, float64, bool, []string, DateRange or
// []any (rollup arrays). A nil value with a nil error means the property holds
// no value. Unknown type tags yield an error wrapping ErrUnsupportedType.
func Decode(p Property) (any, error) {
	switch p.Type {
	case TypeString:
		return deref(p.String), nil
	case TypeTitle:
		return plainText(p.Title), nil
	case TypeRichText:
		return plainText(p.RichText), nil
	case TypeNumber:
		return deref(p.Number), nil
	case TypeCheckbox:
		return deref(p.Checkbox), nil
	case TypeBoolean:
		return deref(p.Boolean), nil
	case TypeSelect:
		if p.Select == nil {
			return nil, nil
		}
		return p.Select.Name, nil
	case TypeMultiSelect:
		return collect(p.MultiSelect, func(o SelectOption) string { return o.Name }), nil
	case TypeDate:
		return decodeDate(p.Date), nil
	case TypeURL:
		return deref(p.URL), nil
	case TypeEmail:
		return deref(p.Email), nil
	case TypePhoneNumber:
		return deref(p.PhoneNumber), nil
	case TypeFiles:
		return collect(p.Files, func(f File) string { return f.Name }), nil
	case TypeRelation:
		return collect(p.Relation, func(r Reference) string { return r.ID }), nil
	case TypePeople:
		return collect(p.People, func(u User) string { return u.Name }), nil
	case TypeFormula:
		return decodeFormula(p.Formula)
	case TypeRollup:
		return decodeRollup(p.Rollup)
	case TypeCreatedTime:
		return deref(p.CreatedTime), nil
	case TypeLastEditedTime:
		return deref(p.LastEditedTime), nil
	case TypeCreatedBy:
		return actorName(p.CreatedBy), nil
	case TypeLastEditedBy:
		return actorName(p.LastEditedBy), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, p.Type)
	}
}

// deref returns the pointed-to value, or nil when the pointer is nil.
// The untyped nil keeps absent values distinguishable from zero values.
func deref[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func plainText(runs []RichText) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.PlainText)
	}
	return b.String()
}

// collect maps a remote list to its extracted sub-field. The result is never
// nil so that an empty remote list decodes to an empty list.
func collect[T any](items []T, field func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, field(it))
	}
	return out
}

func decodeDate(d *DateValue) any {
	if d == nil || d.Start == "" {
		return nil
	}
	if d.End != nil && *d.End != "" {
		return DateRange{Start: d.Start, End: *d.End}
	}
	return d.Start
}

func actorName(u *User) any {
	if u == nil || u.Name == "" {
		return nil
	}
	return u.Name
}

func decodeFormula(f *Formula) (any, error) {
	if f == nil {
		return nil, nil
	}

	switch f.Type {
	case TypeString, TypeNumber, TypeBoolean, TypeDate:
		return Decode(Property{
			Type:    f.Type,
			String:  f.String,
			Number:  f.Number,
			Boolean: f.Boolean,
			Date:    f.Date,
		})
	default:
		return nil, fmt.Errorf("%w: formula result %q", ErrUnsupportedType, f.Type)
	}
}

func decodeRollup(r *Rollup) (any, error) {
	if r == nil {
		return nil, nil
	}

	switch r.Type {
	case RollupArray:
		return decodeRollupArray(r.Array), nil
	case RollupNumber:
		return Decode(Property{Type: TypeNumber, Number: r.Number})
	case RollupDate:
		return Decode(Property{Type: TypeDate, Date: r.Date})
	case RollupBoolean:
		return Decode(Property{Type: TypeBoolean, Boolean: r.Boolean})
	case RollupString:
		return Decode(Property{Type: TypeString, String: r.String})
	default:
		// incomplete and unsupported rollups carry no usable value.
		return nil, nil
	}
}

// decodeRollupArray decodes every element that is itself a typed property and
// stringifies the rest. Elements that fail to decode are kept as nil so the
// list stays aligned with the remote order.
func decodeRollupArray(elems []json.RawMessage) []any {
	out := make([]any, 0, len(elems))
	for _, raw := range elems {
		if isTypedProperty(raw) {
			var p Property
			if err := json.Unmarshal(raw, &p); err == nil {
				v, err := Decode(p)
				if err != nil {
					v = nil
				}
				out = append(out, v)
				continue
			}
		}
		out = append(out, stringify(raw))
	}
	return out
}

func isTypedProperty(raw json.RawMessage) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return false
	}
	_, ok := obj["type"]
	return ok
}

func stringify(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
