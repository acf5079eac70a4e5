package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eamcet-predictor/internal/pkg/logger"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController answers liveness probes
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController. db may be nil for the in-memory store.
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Ping reports liveness
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /ping [get]
func (c *HealthController) Ping(ctx *gin.Context) {
	if c.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := c.db.Ping(pingCtx); err != nil {
			logger.Warn().Err(err).Msg("Health check failed: database unreachable")
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unreachable", "status": "error"})
			return
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
}

// Root answers the bare "/" keep-alive probe of the hosting platform
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.String(http.StatusOK, "EAMCET College Predictor API is running")
}
