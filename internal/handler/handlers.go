// Package handler is the first layer, the entry point for business logic
// after the router.
//
// It binds requests, runs input validation through the validation
// package, and calls the appropriate service. It acts as the interface
// between the HTTP request and the core business logic.
package handler

import (
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one value around.
type Handlers struct {
	Health  *HealthHandler  // Health serves the /status endpoint.
	OpenAPI *OpenAPIHandler // OpenAPI serves the API documentation UI.
	Author  *AuthorHandler
	Post    *PostHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Author:  NewAuthorHandler(s, services.Author),
		Post:    NewPostHandler(s, services.Post),
	}
}
