package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TitleMarkers are the substrings a post title must contain at least one of.
// Matching is case-sensitive.
var TitleMarkers = []string{"Won't Believe", "Secret", "Top", "Guess"}

// Categories are the allowed post categories.
var Categories = []string{"Fiction", "Non-Fiction"}

const (
	// ContentMinLength is the minimum post content length, in characters.
	ContentMinLength = 250
	// SummaryMaxLength is the maximum post summary length, in characters.
	SummaryMaxLength = 250
	// PhoneNumberLength is the exact number of digits of a phone number.
	PhoneNumberLength = 10
)

// validate is shared by all rules; validator.Validate caches parsed tags
// and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// clickbait: the string contains at least one TitleMarkers entry.
	if err := v.RegisterValidation("clickbait", func(fl validator.FieldLevel) bool {
		title := fl.Field().String()
		for _, marker := range TitleMarkers {
			if strings.Contains(title, marker) {
				return true
			}
		}
		return false
	}); err != nil {
		panic(err)
	}

	return v
}

// kindForTag maps the validator tag that failed onto an error Kind.
func kindForTag(tag string) Kind {
	switch tag {
	case "required":
		return MissingField
	case "len", "number":
		return InvalidFormat
	case "min":
		return TooShort
	case "max":
		return TooLong
	case "oneof":
		return InvalidEnum
	case "clickbait":
		return PolicyViolation
	default:
		return InvalidFormat
	}
}

// check runs tag against value and records one violation (kind derived
// from the first failing tag) with message when it fails.
func (e Errors) check(field string, value any, tag string, message string) {
	err := validate.Var(value, tag)
	if err == nil {
		return
	}

	kind := InvalidFormat
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		kind = kindForTag(fieldErrors[0].Tag())
	}

	e.Add(field, kind, message)
}

// optionalString applies tag to field when it holds a non-empty string.
//
// Missing, null and "" values skip the rule entirely. A value of any other
// JSON type is an InvalidFormat.
func (e Errors) optionalString(fields Fields, field, label, tag, message string) {
	value, present, ok := fields.String(field)
	if !present {
		return
	}
	if !ok {
		e.Add(field, InvalidFormat, label+" must be a string")
		return
	}
	if value == "" {
		return
	}
	e.check(field, value, tag, message)
}

// oneOfTag builds an "oneof=a b c" tag from values without spaces.
func oneOfTag(values []string) string {
	return "oneof=" + strings.Join(values, " ")
}
