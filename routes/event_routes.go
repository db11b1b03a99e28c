package routes

import (
	"github.com/anyango/dev_circle/handlers"
	"github.com/anyango/dev_circle/middleware"
	"github.com/gofiber/fiber/v2"
)

func EventRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/events", handlers.ListEvents)
	api.Post("/events", middleware.Protected(), handlers.SubmitEvent)
}
