package routes

import (
	"github.com/anyango/dev_circle/handlers"
	"github.com/anyango/dev_circle/middleware"
	"github.com/gofiber/fiber/v2"
)

func ArticleRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/articles", handlers.ListArticles)
	api.Get("/articles/:slug", handlers.GetArticle)

	api.Post("/articles", middleware.Protected(), middleware.ExpertRequired(), handlers.CreateArticle)
	api.Put("/articles/:articleId", middleware.Protected(), middleware.ExpertRequired(), handlers.UpdateArticle)
	api.Delete("/articles/:articleId", middleware.Protected(), middleware.ExpertRequired(), handlers.DeleteArticle)
}
