package property

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-item-tracker/internal/domain"
)

// DateLayout is the only calendar-date form accepted on the write path.
const DateLayout = "2006-01-02"

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	// decimalPattern admits plain decimal and exponent notation only, so
	// strconv's hex floats and underscore separators are rejected.
	decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// Payload is the write representation of a single property value.
// A payload with a nil Number or Date, or an empty RichText, clears the
// property on the remote side.
type Payload struct {
	Type     Type
	Title    []TextRun
	RichText []TextRun
	Number   *float64
	Date     *DateWrite
}

// TextRun is one text run of a title or rich_text write.
type TextRun struct {
	Text TextBody `json:"text"`
}

// DateWrite is the date object sent on writes.
type DateWrite struct {
	Start string  `json:"start"`
	End   *string `json:"end"`
}

// Clears reports whether the payload erases the property's value.
func (p Payload) Clears() bool {
	switch p.Type {
	case TypeTitle:
		return len(p.Title) == 0
	case TypeRichText:
		return len(p.RichText) == 0
	case TypeNumber:
		return p.Number == nil
	case TypeDate:
		return p.Date == nil
	default:
		return false
	}
}

// MarshalJSON renders the payload as the single-key object the remote write
// API expects. Clears are rendered as explicit nulls or empty lists.
func (p Payload) MarshalJSON() ([]byte, error) {
	switch p.Type {
	case TypeTitle:
		return json.Marshal(map[string][]TextRun{"title": nonNilRuns(p.Title)})
	case TypeRichText:
		return json.Marshal(map[string][]TextRun{"rich_text": nonNilRuns(p.RichText)})
	case TypeNumber:
		return json.Marshal(map[string]*float64{"number": p.Number})
	case TypeDate:
		return json.Marshal(map[string]*DateWrite{"date": p.Date})
	default:
		return nil, fmt.Errorf("%w: cannot write %q property", domain.ErrUnsupportedOperation, p.Type)
	}
}

func nonNilRuns(runs []TextRun) []TextRun {
	if runs == nil {
		return []TextRun{}
	}
	return runs
}

// Encode converts a plain value into the write payload for a property of type t.
//
// A nil value or a blank string clears rich_text, number and date properties.
// Clearing a title fails with a *domain.ValidationError. Values that cannot be
// represented fail with a *domain.FormatError. Types outside the writable
// subset fail with domain.ErrUnsupportedOperation.
func Encode(v any, t Type) (Payload, error) {
	switch t {
	case TypeTitle:
		s, ok := textOf(v)
		if !ok {
			return Payload{}, domain.NewValidationError(string(t), "cannot be cleared")
		}
		return Payload{Type: t, Title: []TextRun{{Text: TextBody{Content: s}}}}, nil
	case TypeRichText:
		s, ok := textOf(v)
		if !ok {
			return Payload{Type: t, RichText: []TextRun{}}, nil
		}
		return Payload{Type: t, RichText: []TextRun{{Text: TextBody{Content: s}}}}, nil
	case TypeNumber:
		return encodeNumber(v)
	case TypeDate:
		return encodeDate(v)
	default:
		return Payload{}, fmt.Errorf("%w: writing %q properties", domain.ErrUnsupportedOperation, t)
	}
}

// textOf renders v as text. It reports false when v is absent or blank.
func textOf(v any) (string, bool) {
	var s string
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		s = x
	case *string:
		if x == nil {
			return "", false
		}
		s = *x
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprint(x)
	}
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

func encodeNumber(v any) (Payload, error) {
	var n float64
	switch x := v.(type) {
	case nil:
		return Payload{Type: TypeNumber}, nil
	case *float64:
		if x == nil {
			return Payload{Type: TypeNumber}, nil
		}
		n = *x
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Payload{}, &domain.FormatError{Value: x.String(), Want: "number"}
		}
		n = f
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return Payload{Type: TypeNumber}, nil
		}
		if !decimalPattern.MatchString(s) {
			return Payload{}, &domain.FormatError{Value: x, Want: "number"}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Payload{}, &domain.FormatError{Value: x, Want: "number"}
		}
		n = f
	default:
		return Payload{}, &domain.FormatError{Value: fmt.Sprint(x), Want: "number"}
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Payload{}, &domain.FormatError{Value: strconv.FormatFloat(n, 'g', -1, 64), Want: "number"}
	}
	return Payload{Type: TypeNumber, Number: &n}, nil
}

func encodeDate(v any) (Payload, error) {
	var s string
	switch x := v.(type) {
	case nil:
		return Payload{Type: TypeDate}, nil
	case *string:
		if x == nil {
			return Payload{Type: TypeDate}, nil
		}
		s = *x
	case string:
		s = x
	case time.Time:
		s = x.Format(DateLayout)
	default:
		return Payload{}, &domain.FormatError{Value: fmt.Sprint(x), Want: "date (YYYY-MM-DD)"}
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return Payload{Type: TypeDate}, nil
	}
	if !datePattern.MatchString(s) {
		return Payload{}, &domain.FormatError{Value: s, Want: "date (YYYY-MM-DD)"}
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return Payload{}, &domain.FormatError{Value: s, Want: "date (YYYY-MM-DD)"}
	}
	return Payload{Type: TypeDate, Date: &DateWrite{Start: s}}, nil
}
