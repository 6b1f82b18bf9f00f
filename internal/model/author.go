package model

import (
	"github.com/deppfellow/blog-api/internal/validation"
)

// Author is a row of the authors table.
type Author struct {
	Base
	Name        string  `json:"name" db:"name"`
	PhoneNumber *string `json:"phone_number" db:"phone_number"`
}

// NewAuthor holds the values inserted for a new author.
type NewAuthor struct {
	Name        string
	PhoneNumber *string
}

// AuthorResponse is the body returned by POST /authors.
type AuthorResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phone_number"`
}

// Response projects the author onto the fields clients see.
func (a *Author) Response() AuthorResponse {
	return AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		PhoneNumber: a.PhoneNumber,
	}
}

// CreateAuthorPayload is the request body of POST /authors.
//
// The body is kept as an untyped field mapping; rules read it through
// validation.Fields.
type CreateAuthorPayload struct {
	Fields validation.Fields
}

// UnmarshalJSON decodes the body into the field mapping.
func (p *CreateAuthorPayload) UnmarshalJSON(data []byte) error {
	fields, err := validation.DecodeFields(data)
	if err != nil {
		return err
	}
	p.Fields = fields
	return nil
}

func (p *CreateAuthorPayload) Validate() error {
	return validation.ValidateAuthor(p.Fields).Err()
}

// NewAuthor converts a validated payload into insert values.
// Absent optional fields stay nil and are stored as NULL.
func (p *CreateAuthorPayload) NewAuthor() NewAuthor {
	name, _, _ := p.Fields.String(validation.FieldName)
	return NewAuthor{
		Name:        name,
		PhoneNumber: p.Fields.OptionalString(validation.FieldPhoneNumber),
	}
}
