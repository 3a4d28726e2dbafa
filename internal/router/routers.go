package router

import (
	"github.com/Payphone-Digital/content-gateway/config"
	"github.com/Payphone-Digital/content-gateway/internal/handler"
	"github.com/Payphone-Digital/content-gateway/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	contentHandler *handler.ContentHandler
	healthHandler  *handler.HealthHandler
	Config         *config.Config
}

func NewRouter(
	content *handler.ContentHandler,
	health *handler.HealthHandler,
	config *config.Config,
) *Router {
	return &Router{
		contentHandler: content,
		healthHandler:  health,
		Config:         config,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	if r.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestResponseMiddleware())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.BasicHealth)
		api.GET("/health/detail", r.healthHandler.HealthCheck)

		v1 := api.Group("/v1")
		{
			v1.Use(middleware.RateLimit(r.Config.RateLimit))

			r.contentRoutes(v1)
		}
	}

	return router
}
