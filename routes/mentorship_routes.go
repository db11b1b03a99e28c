package routes

import (
	"github.com/anyango/dev_circle/handlers"
	"github.com/anyango/dev_circle/middleware"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func MentorshipRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	requests := api.Group("/mentorship/requests", middleware.Protected())
	requests.Post("", handlers.CreateMentorshipRequest)
	requests.Get("", handlers.GetMyRequests)
	requests.Get("/:requestId", handlers.GetMentorshipRequest)
	requests.Post("/:requestId/accept", handlers.AcceptRequest)
	requests.Post("/:requestId/reject", handlers.RejectRequest)
	requests.Post("/:requestId/cancel", handlers.CancelRequest)
	requests.Post("/:requestId/messages", handlers.AddMessage)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocketcontrib.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocketcontrib.New(handlers.ServeWs))
}
