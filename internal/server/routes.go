package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pecheck/internal/handlers"
	"pecheck/internal/handlers/api"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(svc handlers.Service) {
	// Initialize handlers
	checkHandler := handlers.NewCheckHandler(svc, s.Cfg)
	probeHandler := handlers.NewProbeHandler()
	apiCheckHandler := api.NewCheckHandler(svc)

	// Frontend routes
	s.App.Get("/", checkHandler.Index)
	s.App.Get("/check", checkHandler.Check)

	// JSON API
	s.App.Get("/api/check", apiCheckHandler.Check)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
