package errs

import (
	"encoding/json"
	"strings"
)

// FieldError is a single field-level error in a 400 response.
//
//	{ "field": "title", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type every handler returns to the client.
//
// It implements `error` and is serialized directly to JSON by the
// global error handler.
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: tells the client the message is safe to show as-is.
//   - Errors: list of per-field errors (400 responses).
//   - Fields/Kinds: per-field error map (422 responses).
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`

	// Fields maps a field name to its human-readable messages.
	// When set, it replaces Errors in the JSON body:
	//
	//	{ "errors": { "name": ["Name is required"] } }
	Fields map[string][]string `json:"-"`

	// Kinds mirrors Fields index-by-index with machine-readable error kinds
	// (e.g. "MissingField").
	Kinds map[string][]string `json:"-"`
}

// MarshalJSON writes the field map under "errors" when Fields is set,
// and the FieldError list otherwise.
//
// Value receiver: the global error handler serializes HTTPError values.
func (e HTTPError) MarshalJSON() ([]byte, error) {
	// alias has no methods, so json.Marshal does not recurse back here.
	type alias HTTPError

	if e.Fields == nil {
		return json.Marshal(alias(e))
	}

	return json.Marshal(struct {
		Code     string              `json:"code"`
		Message  string              `json:"message"`
		Status   int                 `json:"status"`
		Override bool                `json:"override"`
		Errors   map[string][]string `json:"errors"`
		Kinds    map[string][]string `json:"kinds,omitempty"`
	}{
		Code:     e.Code,
		Message:  e.Message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Fields,
		Kinds:    e.Kinds,
	})
}

// Error returns the client message, so logging the error shows it.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// Only the type is compared, not Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Unprocessable Entity" -> "UNPROCESSABLE_ENTITY"
//
// Used to build stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
