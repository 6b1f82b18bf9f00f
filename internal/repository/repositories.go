// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to persist and look up
// authors and posts, abstracting SQL away from the service layer.
// Each repository has one implementation per supported driver.
package repository

import (
	"context"

	"github.com/deppfellow/blog-api/internal/config"
	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/server"
)

// AuthorRepository persists authors.
type AuthorRepository interface {
	CreateAuthor(ctx context.Context, author model.NewAuthor) (*model.Author, error)
	AuthorNameExists(ctx context.Context, name string) (bool, error)
}

// PostRepository persists posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post model.NewPost) (*model.Post, error)
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Author AuthorRepository
	Post   PostRepository
}

// NewRepositories builds the repositories for the driver s.DB was opened with.
func NewRepositories(s *server.Server) *Repositories {
	if s.DB.Driver == config.DriverPostgres {
		return &Repositories{
			Author: NewPgAuthorRepository(s.DB.Pool),
			Post:   NewPgPostRepository(s.DB.Pool),
		}
	}

	return &Repositories{
		Author: NewSQLiteAuthorRepository(s.DB.SQL),
		Post:   NewSQLitePostRepository(s.DB.SQL),
	}
}
