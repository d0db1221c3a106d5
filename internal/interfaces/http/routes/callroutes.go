package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/telebill/telebill/internal/interfaces/http/handlers"
	"github.com/telebill/telebill/internal/interfaces/http/middleware"
)

// CallRouteConfig holds dependencies for call ledger routes.
type CallRouteConfig struct {
	CallHandler    *handlers.CallHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCallRoutes configures call ledger routes. Calls are immutable, there is no update.
func SetupCallRoutes(engine *gin.Engine, cfg *CallRouteConfig) {
	calls := engine.Group("/calls")
	calls.Use(cfg.AuthMiddleware.RequireAuth())
	{
		calls.GET("", cfg.CallHandler.List)
		calls.POST("", cfg.CallHandler.Create)
		calls.DELETE("/:id", cfg.CallHandler.Delete)
	}
}
