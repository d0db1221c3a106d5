package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/telebill/telebill/internal/infrastructure/auth"
	"github.com/telebill/telebill/internal/shared/constants"
	"github.com/telebill/telebill/internal/shared/errors"
	"github.com/telebill/telebill/internal/shared/logger"
	"github.com/telebill/telebill/internal/shared/utils"
)

// TokenVerifier validates an admin token. *auth.JWTService satisfies it.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid "Authorization: Bearer" admin
// token and stores the admin identity in the gin context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized, "missing authorization token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized, "invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			m.logger.Warnw("failed to verify token", "path", c.Request.URL.Path, "error", err)
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized, "invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAdminID, claims.AdminID)
		c.Set(constants.ContextKeyEmail, claims.Email)

		c.Next()
	}
}
