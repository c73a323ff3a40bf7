package api

import (
	"github.com/gofiber/fiber/v2"

	"reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Game routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Post("/games/:id/move", PlayMove)

	// Aggregate results across sessions
	apiGroup.Get("/stats", middleware.AuthOrToken(), GetStats)
}
