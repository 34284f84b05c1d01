package handler

import (
	"context"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports database and cache reachability
type HealthHandler struct {
	db      Pinger
	cache   domain.Cache
	timeout time.Duration
}

// NewHealthHandler creates a health handler. cache may be nil when redis is disabled.
func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, timeout: 2 * time.Second}
}

// Health godoc
// @Summary Health check
// @Description Pings the database and, when configured, redis
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	resp := dto.HealthResponse{
		Success:  true,
		Status:   "ok",
		Services: map[string]string{"database": "up"},
	}

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Error("Health check: database unreachable", zap.Error(err))
		resp.Services["database"] = "down"
		resp.Success = false
	}

	if h.cache == nil {
		resp.Services["cache"] = "disabled"
	} else if err := h.cache.Ping(ctx); err != nil {
		// the category map falls back to the database, so this only degrades
		logger.Get().Warn("Health check: cache unreachable", zap.Error(err))
		resp.Services["cache"] = "down"
		resp.Status = "degraded"
	} else {
		resp.Services["cache"] = "up"
	}

	if !resp.Success {
		resp.Status = "down"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
