package service

import (
	"github.com/deppfellow/blog-api/internal/middleware"
	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/repository"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/sqlerr"
	"github.com/labstack/echo/v4"
)

type PostService struct {
	server *server.Server
	repo   repository.PostRepository
}

func NewPostService(s *server.Server, repo repository.PostRepository) *PostService {
	return &PostService{
		server: s,
		repo:   repo,
	}
}

// CreatePost stores a post whose payload already passed
// validation.ValidatePost. The author id is stored as given.
func (s *PostService) CreatePost(c echo.Context, payload model.NewPost) (*model.Post, error) {
	logger := middleware.GetLogger(c).With().Str("operation", "create_post").Logger()

	post, err := s.repo.CreatePost(c.Request().Context(), payload)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create post")
		return nil, sqlerr.HandleError(err)
	}

	logger.Info().Int64("post_id", post.ID).Msg("post created")
	return post, nil
}
