package handler

import (
	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthorHandler struct {
	Handler
	authorService *service.AuthorService
}

func NewAuthorHandler(s *server.Server, authorService *service.AuthorService) *AuthorHandler {
	return &AuthorHandler{
		Handler:       NewHandler(s),
		authorService: authorService,
	}
}

// CreateAuthor handles POST /authors. The payload already passed validation.
func (h *AuthorHandler) CreateAuthor(c echo.Context, payload *model.CreateAuthorPayload) (*model.AuthorResponse, error) {
	author, err := h.authorService.CreateAuthor(c, payload.NewAuthor())
	if err != nil {
		return nil, err
	}

	response := author.Response()
	return &response, nil
}
