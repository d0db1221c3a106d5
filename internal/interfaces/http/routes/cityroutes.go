package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/telebill/telebill/internal/interfaces/http/handlers"
	"github.com/telebill/telebill/internal/interfaces/http/middleware"
)

// CityRouteConfig holds dependencies for city tariff routes.
type CityRouteConfig struct {
	CityHandler    *handlers.CityHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCityRoutes configures city tariff routes.
func SetupCityRoutes(engine *gin.Engine, cfg *CityRouteConfig) {
	cities := engine.Group("/cities")
	cities.Use(cfg.AuthMiddleware.RequireAuth())
	{
		cities.GET("", cfg.CityHandler.List)
		cities.POST("", cfg.CityHandler.Create)
		cities.PUT("/:id", cfg.CityHandler.Update)
		cities.DELETE("/:id", cfg.CityHandler.Delete)
	}
}
