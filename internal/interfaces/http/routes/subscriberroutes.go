package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/telebill/telebill/internal/interfaces/http/handlers"
	"github.com/telebill/telebill/internal/interfaces/http/middleware"
)

// SubscriberRouteConfig holds dependencies for subscriber routes.
type SubscriberRouteConfig struct {
	SubscriberHandler *handlers.SubscriberHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupSubscriberRoutes configures subscriber routes. Every route requires an admin token.
func SetupSubscriberRoutes(engine *gin.Engine, cfg *SubscriberRouteConfig) {
	subscribers := engine.Group("/subscribers")
	subscribers.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscribers.GET("", cfg.SubscriberHandler.List)
		subscribers.POST("", cfg.SubscriberHandler.Create)
		subscribers.GET("/:id", cfg.SubscriberHandler.Get)
		subscribers.PUT("/:id", cfg.SubscriberHandler.Update)
		subscribers.DELETE("/:id", cfg.SubscriberHandler.Delete)
	}
}
