package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct{}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler() *ProbeHandler {
	return &ProbeHandler{}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint. The app has no hard backing
// services (the cache is optional), so readiness matches liveness.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
