package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-match/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, match *handlers.MatchHandler, resume *handlers.ResumeHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Match scoring
	m := v1.Group("/match")
	m.Post("/analyze", match.Analyze)
	m.Post("/upload", match.Upload)

	// Extraction-only helper
	rg := v1.Group("/resume")
	rg.Post("/extract", resume.Extract)
}
