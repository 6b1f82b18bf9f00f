package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestErrCode(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", TableName: "authors", ConstraintName: "authors_name_key"}

	assert.Equal(t, UniqueViolation, ErrCode(unique))
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("insert author: %w", unique)))
	assert.Equal(t, NotNullViolation, ErrCode(&pgconn.PgError{Code: "23502"}))
	assert.Equal(t, Other, ErrCode(errors.New("boom")))
	assert.Equal(t, Other, ErrCode(nil))
}

func TestHandleError_UniqueViolation(t *testing.T) {
	err := fmt.Errorf("failed to collect row: %w", &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "authors",
		ConstraintName: "authors_name_key",
	})

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "AUTHOR_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Author with this Name already exists", httpErr.Message)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	err := &pgconn.PgError{
		Code:       "23502",
		TableName:  "posts",
		ColumnName: "title",
	}

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "POST_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Title is required", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "title", Error: "is required"}}, httpErr.Errors)
}

func TestHandleError_UnknownDatabaseErrorIsSanitized(t *testing.T) {
	err := &pgconn.PgError{Code: "42P01", Message: `relation "secret_table" does not exist`}

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "secret_table")
}

func TestHandleError_NoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(fmt.Errorf("failed to read row from table:authors: for id=1: %w", sql.ErrNoRows)))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Author not found", httpErr.Message)

	httpErr = asHTTPError(t, HandleError(sql.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleError_KeepsHTTPErrors(t *testing.T) {
	original := errs.NewNotFoundError("Route not found", false, nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleError_PlainErrorIsInternal(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", httpErr.Code)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "name", extractColumnForUniqueViolation("authors_name_key"))
	assert.Equal(t, "name", extractColumnForUniqueViolation("unique_authors_name"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
	assert.Equal(t, "", extractColumnForUniqueViolation("posts_pkey"))
}
