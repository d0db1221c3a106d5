package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/telebill/telebill/internal/infrastructure/auth"
	"github.com/telebill/telebill/internal/infrastructure/config"
	"github.com/telebill/telebill/internal/interfaces/http/handlers"
	"github.com/telebill/telebill/internal/interfaces/http/middleware"
	"github.com/telebill/telebill/internal/shared/db"
	"github.com/telebill/telebill/internal/shared/logger"
)

// Container holds the infrastructure, repositories, use cases, handlers and
// middlewares of the HTTP server and wires them together.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	txMgr  *db.TransactionManager
	jwtSvc *auth.JWTService
	hasher *auth.BcryptPasswordHasher

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewContainer creates a Container with all dependencies wired together.
// redisClient may be nil, which disables login rate limiting.
func NewContainer(gdb *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	c.initInfrastructure()
	c.ucs = newUseCases(c.repos, c.txMgr, c.hasher, c.jwtSvc, log)
	c.hdlrs = newHandlers(c.ucs, c.pinger(), log)

	return c
}

func (c *Container) initInfrastructure() {
	cfg := c.cfg

	c.repos = newRepositories(c.db, c.log)
	c.txMgr = db.NewTransactionManager(c.db)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpDays)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.rateLimiter = middleware.NewRateLimiter(c.redis, "login", cfg.RateLimit.LoginPerMinute, time.Minute, c.log)
}

// pinger returns the sql.DB behind gorm for the health check, or nil.
func (c *Container) pinger() handlers.Pinger {
	if c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		c.log.Warnw("health check will not ping the database", "error", err)
		return nil
	}
	return sqlDB
}

// NewRedisClient connects to Redis. A failed ping is logged and yields nil so
// the server still starts without rate limiting.
func NewRedisClient(cfg *config.Config, log logger.Interface) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unavailable, login rate limiting disabled", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = client.Close()
		return nil
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())

	return client
}
