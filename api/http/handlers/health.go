package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeparser/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc     health.ReadinessUseCase
	started time.Time
}

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler {
	return &HealthHandler{svc: svc, started: time.Now()}
}

// Health: процесс жив и принимает запросы.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "ok",
		"message":  "Service is running",
		"uptime_s": int64(time.Since(h.started).Seconds()),
	})
}

// Ready: доступны бакет и хранилище результатов (если настроено).
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]any
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "not_ready",
			"details": strings.Split(err.Error(), "\n"),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
}
