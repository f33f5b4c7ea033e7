package item

// Field identifies an item attribute independently of the display name the
// remote collection uses for it.
type Field string

const (
	FieldName            Field = "name"
	FieldEntryDate       Field = "entry_date"
	FieldRetirementDate  Field = "retirement_date"
	FieldPurchasePrice   Field = "purchase_price"
	FieldAdditionalValue Field = "additional_value"
	FieldNote            Field = "note"
	FieldDailyPrice      Field = "daily_price"
	FieldServiceDays     Field = "service_days"
)

// IsValid returns true if the field is one of the defined constants.
func (f Field) IsValid() bool {
	switch f {
	case FieldName, FieldEntryDate, FieldRetirementDate, FieldPurchasePrice,
		FieldAdditionalValue, FieldNote, FieldDailyPrice, FieldServiceDays:
		return true
	}
	return false
}

// Writable reports whether the field can be set through create and update.
// Daily price and service days are computed by the remote collection.
func (f Field) Writable() bool {
	switch f {
	case FieldName, FieldEntryDate, FieldRetirementDate, FieldPurchasePrice,
		FieldAdditionalValue, FieldNote:
		return true
	case FieldDailyPrice, FieldServiceDays:
		return false
	}
	return false
}

// String returns the string representation of the field.
func (f Field) String() string {
	return string(f)
}

// Fields returns every field in a stable order.
func Fields() []Field {
	return append(WritableFields(), FieldDailyPrice, FieldServiceDays)
}

// WritableFields returns the fixed set of fields accepted by updates,
// in a stable order.
func WritableFields() []Field {
	return []Field{
		FieldName,
		FieldEntryDate,
		FieldRetirementDate,
		FieldPurchasePrice,
		FieldAdditionalValue,
		FieldNote,
	}
}
