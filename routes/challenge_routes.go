package routes

import (
	"github.com/anyango/dev_circle/handlers"
	"github.com/anyango/dev_circle/middleware"
	"github.com/gofiber/fiber/v2"
)

func ChallengeRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/challenges", handlers.ListChallenges)
	api.Get("/challenges/:challengeId", handlers.GetChallenge)

	api.Post("/challenges", middleware.Protected(), middleware.ExpertRequired(), handlers.CreateChallenge)
	api.Put("/challenges/:challengeId", middleware.Protected(), middleware.ExpertRequired(), handlers.UpdateChallenge)
	api.Delete("/challenges/:challengeId", middleware.Protected(), middleware.ExpertRequired(), handlers.DeleteChallenge)
}
