package item

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
)

var (
	// pricePattern matches the remote formula output for daily price, e.g. "1.88 元".
	pricePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:元|CNY|RMB)`)
	// daysPattern matches the remote formula output for service days, e.g. "1331 天".
	daysPattern = regexp.MustCompile(`(\d+)\s*(?:天|日|days?)`)
)

// View is the validated projection of an Item with its derived fields parsed.
type View struct {
	ID               string
	Archived         bool
	Name             string
	PurchasePrice    float64
	ServiceStartDate *time.Time
	ServiceEndDate   time.Time
	DailyPrice       *float64
	ServiceDays      *int
	Note             *string
	AdditionalValue  *float64
}

// Warning records an optional field that was dropped or defaulted while
// projecting an item.
type Warning struct {
	ItemID  string
	Field   Field
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("item %s: %s: %s", w.ItemID, w.Field, w.Message)
}

// Project validates it against schema and derives the View.
//
// The name and purchase price are required; when either is missing or has the
// wrong type the item is rejected with a *domain.ValidationError. Every other
// field degrades to absent with a Warning. A missing retirement date defaults
// to the calendar day of now, so projecting the same item on different days
// yields different end dates. Dates are interpreted in now's location.
func Project(it Item, schema Schema, now time.Time) (View, []Warning, error) {
	p := projector{item: it, schema: schema, loc: now.Location()}

	v := View{ID: it.ID, Archived: it.Archived}
	v.Name = p.name()
	v.PurchasePrice = p.price()
	if len(p.rejected) > 0 {
		return View{}, nil, &domain.ValidationError{Fields: p.rejected}
	}

	v.ServiceStartDate = p.startDate()
	v.ServiceEndDate = p.endDate(now)
	v.DailyPrice = p.dailyPrice()
	v.ServiceDays = p.serviceDays()
	v.Note = p.note()
	v.AdditionalValue = p.additionalValue()

	return v, p.warnings, nil
}

type projector struct {
	item     Item
	schema   Schema
	loc      *time.Location
	rejected map[string]string
	warnings []Warning
}

func (p *projector) value(f Field) (any, bool) {
	v, ok := p.item.Properties[p.schema.DisplayName(f)]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (p *projector) reject(f Field, msg string) {
	if p.rejected == nil {
		p.rejected = make(map[string]string)
	}
	p.rejected[f.String()] = msg
}

func (p *projector) warn(f Field, format string, args ...any) {
	p.warnings = append(p.warnings, Warning{
		ItemID:  p.item.ID,
		Field:   f,
		Message: fmt.Sprintf(format, args...),
	})
}

func (p *projector) name() string {
	raw, ok := p.value(FieldName)
	if !ok {
		p.reject(FieldName, domain.MsgRequired)
		return ""
	}
	s, isString := raw.(string)
	if !isString {
		p.reject(FieldName, fmt.Sprintf("must be text, got %T", raw))
		return ""
	}
	if strings.TrimSpace(s) == "" {
		p.reject(FieldName, domain.MsgRequired)
		return ""
	}
	return s
}

func (p *projector) price() float64 {
	raw, ok := p.value(FieldPurchasePrice)
	if !ok {
		p.reject(FieldPurchasePrice, domain.MsgRequired)
		return 0
	}
	n, isNumber := asNumber(raw)
	if !isNumber {
		p.reject(FieldPurchasePrice, fmt.Sprintf("must be a number, got %T", raw))
		return 0
	}
	return n
}

func (p *projector) startDate() *time.Time {
	raw, ok := p.value(FieldEntryDate)
	if !ok || raw == "" {
		p.warn(FieldEntryDate, "not set")
		return nil
	}
	d, err := p.parseDate(raw)
	if err != nil {
		p.warn(FieldEntryDate, "%v", err)
		return nil
	}
	return &d
}

func (p *projector) endDate(now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, p.loc)

	raw, ok := p.value(FieldRetirementDate)
	if !ok || raw == "" {
		return today
	}
	d, err := p.parseDate(raw)
	if err != nil {
		p.warn(FieldRetirementDate, "%v, using today", err)
		return today
	}
	return d
}

// parseDate accepts a calendar date, a timestamp whose first ten characters
// are a calendar date, or a date range (its start is used).
func (p *projector) parseDate(raw any) (time.Time, error) {
	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case DateRange:
		s = v.Start
	default:
		return time.Time{}, fmt.Errorf("cannot parse %T as a date", raw)
	}

	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) && s[len(DateLayout)] == 'T' {
		s = s[:len(DateLayout)]
	}
	d, err := time.ParseInLocation(DateLayout, s, p.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
	}
	return d, nil
}

func (p *projector) dailyPrice() *float64 {
	raw, ok := p.value(FieldDailyPrice)
	if !ok || raw == "" {
		return nil
	}
	if n, isNumber := asNumber(raw); isNumber {
		return &n
	}
	if s, isString := raw.(string); isString {
		if m := pricePattern.FindStringSubmatch(s); m != nil {
			if n, err := strconv.ParseFloat(m[1], 64); err == nil {
				return &n
			}
		}
	}
	p.warn(FieldDailyPrice, "cannot parse %v, expected a form like \"1.88 元\"", raw)
	return nil
}

func (p *projector) serviceDays() *int {
	raw, ok := p.value(FieldServiceDays)
	if !ok || raw == "" {
		return nil
	}
	if n, isNumber := asNumber(raw); isNumber {
		if n == math.Trunc(n) && math.Abs(n) <= math.MaxInt32 {
			days := int(n)
			return &days
		}
		p.warn(FieldServiceDays, "%v is not a whole number of days", n)
		return nil
	}
	if s, isString := raw.(string); isString {
		if m := daysPattern.FindStringSubmatch(s); m != nil {
			if days, err := strconv.Atoi(m[1]); err == nil {
				return &days
			}
		}
	}
	p.warn(FieldServiceDays, "cannot parse %v, expected a form like \"1331 天\"", raw)
	return nil
}

func (p *projector) note() *string {
	raw, ok := p.value(FieldNote)
	if !ok {
		return nil
	}
	s, isString := raw.(string)
	if !isString {
		p.warn(FieldNote, "must be text, got %T", raw)
		return nil
	}
	return &s
}

func (p *projector) additionalValue() *float64 {
	raw, ok := p.value(FieldAdditionalValue)
	if !ok || raw == "" {
		return nil
	}
	if n, isNumber := asNumber(raw); isNumber {
		return &n
	}
	if s, isString := raw.(string); isString {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
			return &n
		}
	}
	p.warn(FieldAdditionalValue, "cannot parse %v as a number", raw)
	return nil
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
