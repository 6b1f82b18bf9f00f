package router

import (
	"net/http"

	"github.com/deppfellow/blog-api/internal/handler"
	"github.com/deppfellow/blog-api/internal/model"
	"github.com/labstack/echo/v4"
)

func registerBlogRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/authors", handler.Handle(
		h.Author.Handler,
		h.Author.CreateAuthor,
		http.StatusCreated,
		&model.CreateAuthorPayload{},
	))

	r.POST("/posts", handler.Handle(
		h.Post.Handler,
		h.Post.CreatePost,
		http.StatusCreated,
		&model.CreatePostPayload{},
	))
}
