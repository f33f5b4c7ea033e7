// Package property implements the codec between Notion's typed page
// properties and the plain values the rest of the service works with.
//
// Decode dispatches on the property's type tag and never inspects the shape
// of the payload to guess the type. Encode produces write payloads for the
// writable subset (title, rich_text, number, date) only.
package property

// Type is the discriminator carried by every remote property.
type Type string

// Property type tags understood by the codec.
const (
	TypeString         Type = "string"
	TypeTitle          Type = "title"
	TypeRichText       Type = "rich_text"
	TypeNumber         Type = "number"
	TypeCheckbox       Type = "checkbox"
	TypeBoolean        Type = "boolean"
	TypeSelect         Type = "select"
	TypeMultiSelect    Type = "multi_select"
	TypeDate           Type = "date"
	TypeURL            Type = "url"
	TypeEmail          Type = "email"
	TypePhoneNumber    Type = "phone_number"
	TypeFiles          Type = "files"
	TypeRelation       Type = "relation"
	TypePeople         Type = "people"
	TypeFormula        Type = "formula"
	TypeRollup         Type = "rollup"
	TypeCreatedTime    Type = "created_time"
	TypeLastEditedTime Type = "last_edited_time"
	TypeCreatedBy      Type = "created_by"
	TypeLastEditedBy   Type = "last_edited_by"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeString, TypeTitle, TypeRichText, TypeNumber, TypeCheckbox, TypeBoolean,
		TypeSelect, TypeMultiSelect, TypeDate, TypeURL, TypeEmail, TypePhoneNumber,
		TypeFiles, TypeRelation, TypePeople, TypeFormula, TypeRollup,
		TypeCreatedTime, TypeLastEditedTime, TypeCreatedBy, TypeLastEditedBy:
		return true
	}
	return false
}

// ReadOnly reports whether the remote computes the property's value itself.
// Read-only properties are omitted from listings unless explicitly requested.
func (t Type) ReadOnly() bool {
	switch t {
	case TypeFormula, TypeRollup, TypeCreatedTime, TypeLastEditedTime, TypeCreatedBy, TypeLastEditedBy:
		return true
	case TypeString, TypeTitle, TypeRichText, TypeNumber, TypeCheckbox, TypeBoolean,
		TypeSelect, TypeMultiSelect, TypeDate, TypeURL, TypeEmail, TypePhoneNumber,
		TypeFiles, TypeRelation, TypePeople:
		return false
	}
	return false
}

// Writable reports whether Encode can produce a payload for the type.
func (t Type) Writable() bool {
	switch t {
	case TypeTitle, TypeRichText, TypeNumber, TypeDate:
		return true
	case TypeString, TypeCheckbox, TypeBoolean, TypeSelect, TypeMultiSelect, TypeURL,
		TypeEmail, TypePhoneNumber, TypeFiles, TypeRelation, TypePeople, TypeFormula,
		TypeRollup, TypeCreatedTime, TypeLastEditedTime, TypeCreatedBy, TypeLastEditedBy:
		return false
	}
	return false
}

// String returns the wire representation of the type.
func (t Type) String() string {
	return string(t)
}
