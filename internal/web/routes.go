package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/face-filters/internal/assets"
	"github.com/kozaktomas/face-filters/internal/filter"
	"github.com/kozaktomas/face-filters/internal/landmark"
	"github.com/kozaktomas/face-filters/internal/web/handlers"
)

func (s *Server) setupRoutes(detector landmark.Detector, library *assets.Library, params filter.Params) {
	// Create handlers
	processHandler := handlers.NewProcessHandler(detector, library, params)
	filtersHandler := handlers.NewFiltersHandler(params)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/filters", filtersHandler.List)
		r.Post("/process", processHandler.Process)
	})
}
