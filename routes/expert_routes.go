package routes

import (
	"github.com/anyango/dev_circle/handlers"
	"github.com/anyango/dev_circle/middleware"
	"github.com/gofiber/fiber/v2"
)

func ExpertRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	experts := api.Group("/experts", middleware.Protected())
	experts.Post("", handlers.CreateExpertProfile)
	experts.Get("/status", handlers.GetExpertStatus)
}
