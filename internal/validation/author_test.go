package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAuthor_Valid(t *testing.T) {
	errs := ValidateAuthor(Fields{"name": "Ada", "phone_number": "0123456789"})
	assert.Empty(t, errs)
	assert.NoError(t, errs.Err())
}

func TestValidateAuthor_PhoneNumberOptional(t *testing.T) {
	assert.Empty(t, ValidateAuthor(Fields{"name": "Ada"}))
	assert.Empty(t, ValidateAuthor(Fields{"name": "Ada", "phone_number": nil}))
	assert.Empty(t, ValidateAuthor(Fields{"name": "Ada", "phone_number": ""}))
}

func TestValidateAuthor_MissingName(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
	}{
		{"absent", Fields{}},
		{"null", Fields{"name": nil}},
		{"empty", Fields{"name": ""}},
		{"nil mapping", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateAuthor(tt.fields)
			assert.True(t, errs.Has(FieldName, MissingField))
			assert.Equal(t, []string{"Name is required"}, errs.Messages()[FieldName])
		})
	}
}

func TestValidateAuthor_NameNotAString(t *testing.T) {
	errs := ValidateAuthor(Fields{"name": 42.0})
	assert.True(t, errs.Has(FieldName, InvalidFormat))
	assert.False(t, errs.Has(FieldName, MissingField))
}

func TestValidateAuthor_PhoneNumberFormat(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"0123456789", true},
		{"9999999999", true},
		{"012345678", false},   // 9 digits
		{"01234567890", false}, // 11 digits
		{"01234-6789", false},
		{"012345678a", false},
		{"+123456789", false},
		{"０１２３４５６７８９", false}, // full-width digits
		{" 123456789", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			errs := ValidateAuthor(Fields{"name": "Ada", "phone_number": tt.phone})
			if tt.valid {
				assert.Empty(t, errs)
				return
			}
			assert.True(t, errs.Has(FieldPhoneNumber, InvalidFormat))
			assert.Equal(t, []string{"Phone number must be exactly 10 digits"}, errs.Messages()[FieldPhoneNumber])
		})
	}
}

func TestValidateAuthor_PhoneNumberNotAString(t *testing.T) {
	errs := ValidateAuthor(Fields{"name": "Ada", "phone_number": 1234567890})
	assert.True(t, errs.Has(FieldPhoneNumber, InvalidFormat))
	assert.Equal(t, []string{"Phone number must be a string"}, errs.Messages()[FieldPhoneNumber])
}

func TestValidateAuthor_CollectsEveryField(t *testing.T) {
	errs := ValidateAuthor(Fields{"phone_number": "123"})
	assert.Equal(t, []string{FieldName, FieldPhoneNumber}, errs.Fields())
}

func TestDuplicateName(t *testing.T) {
	errs := DuplicateName()
	assert.True(t, errs.Has(FieldName, DuplicateValue))
	assert.Equal(t, map[string][]string{"name": {"Name must be unique"}}, errs.Messages())
}
