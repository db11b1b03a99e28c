package routes

import (
	"github.com/anyango/dev_circle/handlers"
	"github.com/anyango/dev_circle/middleware"
	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/users/sync", middleware.Protected(), handlers.SyncUser)
	api.Get("/users/lookup", middleware.Protected(), handlers.LookupUserID)
	api.Get("/users/me", middleware.Protected(), handlers.GetMe)
	api.Put("/users/me", middleware.Protected(), handlers.UpdateMe)

	api.Get("/users", middleware.Protected(), handlers.ListUsers)
	api.Get("/users/:userId", middleware.Protected(), handlers.GetUser)
}
