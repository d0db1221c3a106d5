package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/telebill/telebill/internal/shared/logger"
	"github.com/telebill/telebill/internal/shared/utils"
)

// Pinger reports database reachability. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger logger.Interface
}

// NewHealthHandler creates a health handler. db may be nil, in which case only
// process liveness is reported.
func NewHealthHandler(db Pinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health reports service status
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Warnw("health check: database unreachable", "error", err)
			utils.JSONResponse(c, http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"})
}
