package model

import (
	"github.com/deppfellow/blog-api/internal/validation"
)

// Post is a row of the posts table.
//
// AuthorID is not a foreign key: it may point at an author that
// does not exist.
type Post struct {
	Base
	Title    string  `json:"title" db:"title"`
	Content  *string `json:"content" db:"content"`
	Category *string `json:"category" db:"category"`
	Summary  *string `json:"summary" db:"summary"`
	AuthorID *int64  `json:"author_id" db:"author_id"`
}

// NewPost holds the values inserted for a new post.
//
// Title is a pointer because the validator does not require it; a nil
// title reaches the store and is rejected by the NOT NULL constraint.
type NewPost struct {
	Title    *string
	Content  *string
	Category *string
	Summary  *string
	AuthorID *int64
}

// PostResponse is the body returned by POST /posts. It leaves out author_id.
type PostResponse struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Summary  *string `json:"summary"`
}

// Response projects the post onto the fields clients see.
func (p *Post) Response() PostResponse {
	return PostResponse{
		ID:       p.ID,
		Title:    p.Title,
		Content:  p.Content,
		Category: p.Category,
		Summary:  p.Summary,
	}
}

// CreatePostPayload is the request body of POST /posts.
type CreatePostPayload struct {
	Fields validation.Fields
}

// UnmarshalJSON decodes the body into the field mapping.
func (p *CreatePostPayload) UnmarshalJSON(data []byte) error {
	fields, err := validation.DecodeFields(data)
	if err != nil {
		return err
	}
	p.Fields = fields
	return nil
}

func (p *CreatePostPayload) Validate() error {
	return validation.ValidatePost(p.Fields).Err()
}

// NewPost converts a validated payload into insert values.
func (p *CreatePostPayload) NewPost() NewPost {
	return NewPost{
		Title:    p.Fields.OptionalString(validation.FieldTitle),
		Content:  p.Fields.OptionalString(validation.FieldContent),
		Category: p.Fields.OptionalString(validation.FieldCategory),
		Summary:  p.Fields.OptionalString(validation.FieldSummary),
		AuthorID: p.Fields.OptionalInt64(validation.FieldAuthorID),
	}
}
