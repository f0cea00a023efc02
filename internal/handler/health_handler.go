package handler

import (
	"context"
	"time"

	"speak-byte/internal/domain"
	"speak-byte/internal/dto"
	"speak-byte/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler reports liveness and the state of the Redis cache
type HealthHandler struct {
	cache domain.Cache
}

// NewHealthHandler creates a new HealthHandler. cache may be nil.
func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health godoc
// @Summary Health check
// @Description Reports service liveness. A Redis outage degrades but does not fail the check.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Redis: "disabled"}
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Redis health check failed", zap.Error(err))
			resp.Status = "degraded"
			resp.Redis = "down"
		} else {
			resp.Redis = "up"
		}
	}
	return c.JSON(resp)
}
