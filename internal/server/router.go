package server

import (
	"github.com/abduss/mediarepo/internal/auth"
	"github.com/abduss/mediarepo/internal/config"
	"github.com/abduss/mediarepo/internal/media"
	"github.com/abduss/mediarepo/internal/metrics"
	"github.com/abduss/mediarepo/internal/storage"
	"github.com/gin-gonic/gin"
)

// Dependencies groups everything the HTTP router needs.
type Dependencies struct {
	Config  config.Config
	Backend storage.Backend
	Media   *media.Service
}

// NewRouter builds a Gin engine with foundational middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(metrics.Middleware())

	registerHealthRoutes(router, deps)
	metrics.Register(router, deps.Config.Metrics.PrometheusPath)
	registerIndexRoute(router, deps.Config.Auth.APIKey)

	// Raw file retrieval is unauthenticated and only exists for the local
	// backend; remote items are fetched straight from the object store.
	if local, ok := deps.Backend.(*storage.Local); ok {
		router.Static("/uploads", local.Root())
	}

	protected := router.Group("/")
	protected.Use(auth.APIKeyMiddleware(deps.Config.Auth.APIKey))
	media.RegisterRoutes(protected, deps.Media)

	return router
}
