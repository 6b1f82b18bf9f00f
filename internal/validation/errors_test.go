package validation

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors_ErrIsNilWhenEmpty(t *testing.T) {
	errs := Errors{}
	assert.Nil(t, errs.Err())

	errs.Add("name", MissingField, "Name is required")
	assert.Error(t, errs.Err())
}

func TestErrors_KeepsEveryViolationInOrder(t *testing.T) {
	errs := Errors{}
	errs.Add("name", MissingField, "first")
	errs.Add("name", DuplicateValue, "second")

	assert.Equal(t, []string{"first", "second"}, errs.Messages()["name"])
	assert.Equal(t, []string{"MissingField", "DuplicateValue"}, errs.Kinds()["name"])
}

func TestErrors_HTTPError(t *testing.T) {
	errs := Errors{}
	errs.Add("phone_number", InvalidFormat, "Phone number must be exactly 10 digits")

	httpErr := errs.HTTPError()
	require.NotNil(t, httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", httpErr.Code)
	assert.Equal(t, map[string][]string{"phone_number": {"Phone number must be exactly 10 digits"}}, httpErr.Fields)
	assert.Equal(t, map[string][]string{"phone_number": {"InvalidFormat"}}, httpErr.Kinds)
}
