package routes

import (
	"github.com/anyango/dev_circle/handlers"
	"github.com/gofiber/fiber/v2"
)

func JobRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/jobs", handlers.ListJobs)
	api.Get("/jobs/:jobId", handlers.GetJob)
}
