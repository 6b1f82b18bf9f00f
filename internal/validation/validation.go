// Package validation contains the logic for validating
// request data.
//
// Request bodies are decoded into an untyped field mapping (Fields) and
// checked by explicit per-entity rule functions (ValidateAuthor,
// ValidatePost). Individual checks reuse go-playground/validator tags;
// failures are collected into Errors, which the client receives as a
// 422 response keyed by field name.
package validation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Validate returns nil, or an Errors collection (via Errors.Err()).
type Validatable interface {
	Validate() error
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the payload from the request body.
//  2. payload.Validate() applies the validation rules.
//
// Returns:
//   - 400 *errs.HTTPError when the body cannot be decoded
//   - echo's own error for non-400 bind failures (e.g. 415 unsupported media type)
//   - 422 *errs.HTTPError with the per-field error map when rules fail
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if echoErr.Code != http.StatusBadRequest {
				return err
			}
			return errs.NewBadRequestError(fmt.Sprint(echoErr.Message), false, nil, nil)
		}
		return errs.NewBadRequestError(err.Error(), false, nil, nil)
	}

	if err := payload.Validate(); err != nil {
		var validationErrors Errors
		if errors.As(err, &validationErrors) {
			return validationErrors.HTTPError()
		}
		return errs.NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil)
	}

	return nil
}
