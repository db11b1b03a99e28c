package routes

import (
	"github.com/anyango/dev_circle/handlers"
	"github.com/gofiber/fiber/v2"
)

func TagRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/tags", handlers.ListTags)
	api.Get("/tags/:tagId/questions", handlers.GetTagQuestions)
}
