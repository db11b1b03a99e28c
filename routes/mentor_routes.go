package routes

import (
	"github.com/anyango/dev_circle/handlers"
	"github.com/anyango/dev_circle/middleware"
	"github.com/gofiber/fiber/v2"
)

func MentorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/mentors", handlers.ListMentors)
	api.Get("/mentors/:mentorId", handlers.GetMentor)

	api.Post("/mentors", middleware.Protected(), handlers.BecomeMentor)
	api.Put("/mentors/me", middleware.Protected(), handlers.UpdateMyMentorProfile)
	api.Post("/mentors/me/availability", middleware.Protected(), handlers.AddAvailabilityWindow)
	api.Delete("/mentors/me/availability/:windowId", middleware.Protected(), handlers.DeleteAvailabilityWindow)
}
