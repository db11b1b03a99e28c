package routes

import (
	"github.com/anyango/dev_circle/handlers"
	"github.com/anyango/dev_circle/middleware"
	"github.com/gofiber/fiber/v2"
)

func SessionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	sessions := api.Group("/sessions", middleware.Protected())
	sessions.Get("/me", handlers.GetMySessions)
	sessions.Get("/:sessionId", handlers.GetSession)
	sessions.Post("/:sessionId/start", handlers.StartSession)
	sessions.Post("/:sessionId/complete", handlers.CompleteSession)
	sessions.Post("/:sessionId/cancel", handlers.CancelSession)
	sessions.Put("/:sessionId/link", handlers.SetMeetingLink)
}
