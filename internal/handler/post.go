package handler

import (
	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/service"
	"github.com/labstack/echo/v4"
)

type PostHandler struct {
	Handler
	postService *service.PostService
}

func NewPostHandler(s *server.Server, postService *service.PostService) *PostHandler {
	return &PostHandler{
		Handler:     NewHandler(s),
		postService: postService,
	}
}

// CreatePost handles POST /posts.
func (h *PostHandler) CreatePost(c echo.Context, payload *model.CreatePostPayload) (*model.PostResponse, error) {
	post, err := h.postService.CreatePost(c, payload.NewPost())
	if err != nil {
		return nil, err
	}

	response := post.Response()
	return &response, nil
}
