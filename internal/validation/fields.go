package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Fields is a decoded JSON request body: field name -> raw value.
//
// Numbers are kept as json.Number so integer ids survive without a
// float64 round trip. A JSON null is stored as a nil value and treated
// as absent everywhere.
type Fields map[string]any

// ErrNotAnObject is returned when the body is valid JSON but not an object.
var ErrNotAnObject = errors.New("request body must be a JSON object")

// DecodeFields parses a JSON object into Fields.
//
// An empty body or a literal null yields an empty mapping.
func DecodeFields(data []byte) (Fields, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Fields{}, nil
	}
	if trimmed[0] != '{' {
		return nil, ErrNotAnObject
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	fields := Fields{}
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// String reads key as a string.
//
//   - present is false when the key is missing or null
//   - ok is false when the value is present but not a string
func (f Fields) String(key string) (value string, present bool, ok bool) {
	raw, exists := f[key]
	if !exists || raw == nil {
		return "", false, false
	}
	s, isString := raw.(string)
	return s, true, isString
}

// OptionalString returns a pointer to the string value of key, or nil when
// the key is missing, null or not a string.
func (f Fields) OptionalString(key string) *string {
	s, present, ok := f.String(key)
	if !present || !ok {
		return nil
	}
	return &s
}

// Int64 reads key as an integer.
//
//   - present is false when the key is missing or null
//   - err is set when the value is present but not an integral number
func (f Fields) Int64(key string) (value int64, present bool, err error) {
	raw, exists := f[key]
	if !exists || raw == nil {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case json.Number:
		n, convErr := v.Int64()
		if convErr != nil {
			return 0, true, fmt.Errorf("%s must be an integer", key)
		}
		return n, true, nil
	case float64:
		// Fields built in code (not decoded) may carry float64.
		if v != float64(int64(v)) {
			return 0, true, fmt.Errorf("%s must be an integer", key)
		}
		return int64(v), true, nil
	case int:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	default:
		return 0, true, fmt.Errorf("%s must be an integer", key)
	}
}

// OptionalInt64 returns a pointer to the integer value of key, or nil when
// the key is missing, null or not an integer.
func (f Fields) OptionalInt64(key string) *int64 {
	n, present, err := f.Int64(key)
	if !present || err != nil {
		return nil
	}
	return &n
}
