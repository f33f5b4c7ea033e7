package property

import "encoding/json"

// Property is the wire shape of a single page property as returned by the
// Notion API. Exactly one payload field is meaningful, selected by Type.
type Property struct {
	ID   string `json:"id,omitempty"`
	Type Type   `json:"type"`

	String         *string        `json:"string,omitempty"`
	Title          []RichText     `json:"title,omitempty"`
	RichText       []RichText     `json:"rich_text,omitempty"`
	Number         *float64       `json:"number,omitempty"`
	Checkbox       *bool          `json:"checkbox,omitempty"`
	Boolean        *bool          `json:"boolean,omitempty"`
	Select         *SelectOption  `json:"select,omitempty"`
	MultiSelect    []SelectOption `json:"multi_select,omitempty"`
	Date           *DateValue     `json:"date,omitempty"`
	URL            *string        `json:"url,omitempty"`
	Email          *string        `json:"email,omitempty"`
	PhoneNumber    *string        `json:"phone_number,omitempty"`
	Files          []File         `json:"files,omitempty"`
	Relation       []Reference    `json:"relation,omitempty"`
	People         []User         `json:"people,omitempty"`
	Formula        *Formula       `json:"formula,omitempty"`
	Rollup         *Rollup        `json:"rollup,omitempty"`
	CreatedTime    *string        `json:"created_time,omitempty"`
	LastEditedTime *string        `json:"last_edited_time,omitempty"`
	CreatedBy      *User          `json:"created_by,omitempty"`
	LastEditedBy   *User          `json:"last_edited_by,omitempty"`
}

// RichText is one run of a title or rich_text payload.
type RichText struct {
	Type      string    `json:"type,omitempty"`
	PlainText string    `json:"plain_text"`
	Text      *TextBody `json:"text,omitempty"`
	Href      *string   `json:"href,omitempty"`
}

// TextBody is the content of a text run.
type TextBody struct {
	Content string `json:"content"`
}

// SelectOption is a select or multi_select choice.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DateValue is a date or date-range payload. Start and End are ISO 8601
// strings, either a calendar date or a full timestamp.
type DateValue struct {
	Start    string  `json:"start"`
	End      *string `json:"end"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// File is an entry of a files payload.
type File struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Reference is a relation target.
type Reference struct {
	ID string `json:"id"`
}

// User is a person or bot referenced by people and actor properties.
type User struct {
	Object string `json:"object,omitempty"`
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Formula is the result of a formula property. Type names which of the
// scalar fields carries the value.
type Formula struct {
	Type    Type       `json:"type"`
	String  *string    `json:"string,omitempty"`
	Number  *float64   `json:"number,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *DateValue `json:"date,omitempty"`
}

// Rollup is the aggregated result of a rollup property.
type Rollup struct {
	Type     RollupType        `json:"type"`
	Function string            `json:"function,omitempty"`
	Number   *float64          `json:"number,omitempty"`
	Date     *DateValue        `json:"date,omitempty"`
	Boolean  *bool             `json:"boolean,omitempty"`
	String   *string           `json:"string,omitempty"`
	Array    []json.RawMessage `json:"array,omitempty"`
}

// RollupType is the shape of a rollup result.
type RollupType string

// Rollup result shapes.
const (
	RollupNumber      RollupType = "number"
	RollupDate        RollupType = "date"
	RollupBoolean     RollupType = "boolean"
	RollupString      RollupType = "string"
	RollupArray       RollupType = "array"
	RollupIncomplete  RollupType = "incomplete"
	RollupUnsupported RollupType = "unsupported"
)

// DateRange is the decoded value of a date property that carries both a
// start and an end.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
