package routes

import (
	"github.com/anyango/dev_circle/handlers"
	"github.com/anyango/dev_circle/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Post("/mentors/:mentorId/verify", handlers.VerifyMentor)
	admin.Post("/mentors/:mentorId/deactivate", handlers.DeactivateMentor)

	admin.Get("/experts/pending", handlers.ListPendingExpertProfiles)
	admin.Post("/experts/:profileId/review", handlers.ReviewExpertProfile)

	admin.Get("/events/pending", handlers.ListPendingEvents)
	admin.Post("/events/:eventId/review", handlers.ReviewEvent)

	admin.Get("/users", handlers.ListUsers)
	admin.Put("/users/:userId/role", handlers.AdminUpdateUserRole)

	admin.Post("/jobs", handlers.CreateJob)
}
