package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/teletraan/cybertron-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggingMiddleware(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-API-Key", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         3600,
	}))

	router.Get("/health", handlers.HealthCheck)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg, logger))

		r.Route("/dates", func(r chi.Router) {
			r.Post("/parse", handlers.ParseDate)
			r.Get("/from-seconds", handlers.FromSeconds)
			r.Get("/now", handlers.Now)
			r.Post("/difference", handlers.Difference)
			r.Post("/add", handlers.AddDuration)
			r.Post("/subtract", handlers.SubtractDuration)
		})

		r.Post("/durations/parse", handlers.ParseDuration)
	})

	return router
}
