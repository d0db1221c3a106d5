package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/telebill/telebill/docs"
	"github.com/telebill/telebill/internal/interfaces/http/middleware"
	"github.com/telebill/telebill/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.CustomLogger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	c.engine.GET("/health", c.hdlrs.healthHandler.Health)

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
		RateLimiter: c.rateLimiter,
	})
	routes.SetupSubscriberRoutes(c.engine, &routes.SubscriberRouteConfig{
		SubscriberHandler: c.hdlrs.subscriberHandler,
		AuthMiddleware:    c.authMiddleware,
	})
	routes.SetupCityRoutes(c.engine, &routes.CityRouteConfig{
		CityHandler:    c.hdlrs.cityHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupCallRoutes(c.engine, &routes.CallRouteConfig{
		CallHandler:    c.hdlrs.callHandler,
		AuthMiddleware: c.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Shutdown releases resources owned by the container. The database is closed
// by its owner.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
