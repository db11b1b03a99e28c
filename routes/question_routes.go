package routes

import (
	"github.com/anyango/dev_circle/handlers"
	"github.com/anyango/dev_circle/middleware"
	"github.com/gofiber/fiber/v2"
)

func QuestionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/questions", handlers.ListQuestions)
	api.Get("/questions/:questionId", handlers.GetQuestion)
	api.Post("/questions/:questionId/view", handlers.IncrementQuestionView)
	api.Get("/questions/:questionId/answers", handlers.ListAnswers)

	api.Post("/questions", middleware.Protected(), handlers.CreateQuestion)
	api.Put("/questions/:questionId", middleware.Protected(), handlers.UpdateQuestion)
	api.Delete("/questions/:questionId", middleware.Protected(), handlers.DeleteQuestion)
	api.Post("/questions/:questionId/vote", middleware.Protected(), handlers.VoteQuestion)
	api.Post("/questions/:questionId/answers", middleware.Protected(), handlers.CreateAnswer)
	api.Post("/questions/:questionId/ai-answer", middleware.Protected(), handlers.GenerateAIAnswer)

	api.Put("/answers/:answerId", middleware.Protected(), handlers.UpdateAnswer)
	api.Delete("/answers/:answerId", middleware.Protected(), handlers.DeleteAnswer)
	api.Post("/answers/:answerId/vote", middleware.Protected(), handlers.VoteAnswer)
}
