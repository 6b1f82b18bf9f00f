package errs

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError_MarshalFieldMap(t *testing.T) {
	httpErr := NewUnprocessableEntityError(
		map[string][]string{"name": {"Name is required"}},
		map[string][]string{"name": {"MissingField"}},
	)

	body, err := json.Marshal(*httpErr)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"code": "UNPROCESSABLE_ENTITY",
		"message": "Validation failed",
		"status": 422,
		"override": true,
		"errors": {"name": ["Name is required"]},
		"kinds": {"name": ["MissingField"]}
	}`, string(body))
}

func TestHTTPError_MarshalThroughPointer(t *testing.T) {
	httpErr := NewUnprocessableEntityError(map[string][]string{"title": {"x"}}, nil)

	body, err := json.Marshal(httpErr)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, map[string]any{"title": []any{"x"}}, decoded["errors"])
	assert.NotContains(t, decoded, "kinds")
}

func TestHTTPError_MarshalFieldErrorList(t *testing.T) {
	code := "POST_REQUIRED"
	httpErr := NewBadRequestError("The Title is required", true, &code, []FieldError{{Field: "title", Error: "is required"}})

	body, err := json.Marshal(*httpErr)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"code": "POST_REQUIRED",
		"message": "The Title is required",
		"status": 400,
		"override": true,
		"errors": [{"field": "title", "error": "is required"}]
	}`, string(body))
}

func TestNewBadRequestError_DefaultCode(t *testing.T) {
	httpErr := NewBadRequestError("bad", false, nil, nil)
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestHTTPError_Is(t *testing.T) {
	assert.ErrorIs(t, NewInternalServerError(), &HTTPError{})
	assert.Equal(t, "Internal Server Error", NewInternalServerError().Error())
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "TOO_MANY_REQUESTS", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)))
}
