package validation

import (
	"sort"

	"github.com/deppfellow/blog-api/internal/errs"
)

// Kind classifies a validation failure.
type Kind string

const (
	MissingField    Kind = "MissingField"
	InvalidFormat   Kind = "InvalidFormat"
	PolicyViolation Kind = "PolicyViolation"
	TooShort        Kind = "TooShort"
	TooLong         Kind = "TooLong"
	InvalidEnum     Kind = "InvalidEnum"
	DuplicateValue  Kind = "DuplicateValue"
)

// Violation is one failed rule on one field.
type Violation struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Errors collects every violation of a request, keyed by field name.
//
// Rules never short-circuit: all of them run and append here, so a single
// response reports everything that is wrong with the payload.
type Errors map[string][]Violation

// Add records a violation for field.
func (e Errors) Add(field string, kind Kind, message string) {
	e[field] = append(e[field], Violation{Kind: kind, Message: message})
}

// Has reports whether field failed with kind.
func (e Errors) Has(field string, kind Kind) bool {
	for _, v := range e[field] {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// Fields returns the failing field names in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (e Errors) Error() string {
	return "Validation failed"
}

// Err returns e as an error, or nil when nothing failed.
//
// Always return Err() instead of e itself: an empty Errors stored in an
// error interface is not nil.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Messages returns field -> messages, the shape clients see under "errors".
func (e Errors) Messages() map[string][]string {
	out := make(map[string][]string, len(e))
	for field, violations := range e {
		for _, v := range violations {
			out[field] = append(out[field], v.Message)
		}
	}
	return out
}

// Kinds returns field -> kinds, aligned with Messages.
func (e Errors) Kinds() map[string][]string {
	out := make(map[string][]string, len(e))
	for field, violations := range e {
		for _, v := range violations {
			out[field] = append(out[field], string(v.Kind))
		}
	}
	return out
}

// HTTPError converts the collection into a 422 response error.
func (e Errors) HTTPError() *errs.HTTPError {
	return errs.NewUnprocessableEntityError(e.Messages(), e.Kinds())
}
