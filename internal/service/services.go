package service

import (
	"github.com/deppfellow/blog-api/internal/repository"
	"github.com/deppfellow/blog-api/internal/server"
)

type Services struct {
	Author *AuthorService
	Post   *PostService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Author: NewAuthorService(s, repos.Author),
		Post:   NewPostService(s, repos.Post),
	}, nil
}
