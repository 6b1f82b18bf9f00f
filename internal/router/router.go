// Package router defines the API routes and assembles the echo instance.
package router

import (
	"github.com/deppfellow/blog-api/internal/handler"
	"github.com/deppfellow/blog-api/internal/middleware"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance: global error handler, middleware
// chain, then routes.
//
// Middleware order matters:
//   - RateLimit runs first so rejected clients cost nothing else
//   - RequestID runs before anything that logs
//   - the New Relic transaction must exist before EnhanceTracing and ContextEnhancer read it
//   - Recover is innermost so panics still pass through logging and tracing
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.JSONSerializer = strictJSONSerializer{}

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerBlogRoutes(router, h)

	return router
}
