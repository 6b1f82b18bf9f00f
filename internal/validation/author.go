package validation

import "fmt"

// Author field names.
const (
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"
)

var (
	msgNameRequired = "Name is required"
	msgNameUnique   = "Name must be unique"
	msgPhoneNumber  = fmt.Sprintf("Phone number must be exactly %d digits", PhoneNumberLength)
)

// ValidateAuthor checks an author payload.
//
//   - name: MissingField when absent, null or empty
//   - phone_number: InvalidFormat unless exactly 10 ASCII digits (when present)
//
// Name uniqueness needs the store and is checked by the author service;
// see DuplicateName.
func ValidateAuthor(fields Fields) Errors {
	errs := Errors{}

	name, present, ok := fields.String(FieldName)
	switch {
	case !present:
		errs.Add(FieldName, MissingField, msgNameRequired)
	case !ok:
		errs.Add(FieldName, InvalidFormat, "Name must be a string")
	default:
		errs.check(FieldName, name, "required", msgNameRequired)
	}

	errs.optionalString(fields, FieldPhoneNumber, "Phone number",
		fmt.Sprintf("len=%d,number", PhoneNumberLength), msgPhoneNumber)

	return errs
}

// DuplicateName is the error reported when an author name is already taken.
func DuplicateName() Errors {
	errs := Errors{}
	errs.Add(FieldName, DuplicateValue, msgNameUnique)
	return errs
}
