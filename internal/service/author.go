package service

import (
	"github.com/deppfellow/blog-api/internal/middleware"
	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/repository"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/sqlerr"
	"github.com/deppfellow/blog-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type AuthorService struct {
	server *server.Server
	repo   repository.AuthorRepository
}

func NewAuthorService(s *server.Server, repo repository.AuthorRepository) *AuthorService {
	return &AuthorService{
		server: s,
		repo:   repo,
	}
}

// CreateAuthor stores a new author whose payload already passed
// validation.ValidateAuthor.
//
// A taken name is a DuplicateValue on "name". The lookup runs first; a
// concurrent insert that wins the race trips the unique index instead and
// is reported the same way.
func (s *AuthorService) CreateAuthor(c echo.Context, payload model.NewAuthor) (*model.Author, error) {
	ctx := c.Request().Context()
	logger := middleware.GetLogger(c).With().
		Str("operation", "create_author").
		Str("name", payload.Name).
		Logger()

	exists, err := s.repo.AuthorNameExists(ctx, payload.Name)
	if err != nil {
		logger.Error().Err(err).Msg("failed to check author name")
		return nil, sqlerr.HandleError(err)
	}
	if exists {
		logger.Info().Msg("author name already taken")
		return nil, validation.DuplicateName().HTTPError()
	}

	author, err := s.repo.CreateAuthor(ctx, payload)
	if err != nil {
		if sqlerr.ErrCode(err) == sqlerr.UniqueViolation {
			logger.Info().Msg("author name taken by concurrent insert")
			return nil, validation.DuplicateName().HTTPError()
		}
		logger.Error().Err(err).Msg("failed to create author")
		return nil, sqlerr.HandleError(err)
	}

	logger.Info().Int64("author_id", author.ID).Msg("author created")
	return author, nil
}
