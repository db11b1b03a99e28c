package handlers

import (
	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/anyango/dev_circle/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ArticleRequest struct {
	Title     string `json:"title" validate:"required,min=5,max=255"`
	Content   string `json:"content" validate:"required,min=50"`
	Tags      string `json:"tags"`
	Published bool   `json:"published"`
}

// CreateArticle publishes a knowledge-base article. Expert only.
func CreateArticle(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slug, err := utils.GenerateUniqueSlug(database.DB, req.Title)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create article"})
	}

	article := models.Article{
		AuthorID:  user.ID,
		Title:     req.Title,
		Slug:      slug,
		Content:   req.Content,
		Tags:      req.Tags,
		Published: req.Published,
	}
	if err := database.DB.Create(&article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create article"})
	}

	return c.Status(fiber.StatusCreated).JSON(article)
}

func UpdateArticle(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var article models.Article
	if err := database.DB.First(&article, "id = ?", c.Params("articleId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Article not found"})
	}
	if article.AuthorID != user.ID && user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this article"})
	}

	article.Title = req.Title
	article.Content = req.Content
	article.Tags = req.Tags
	article.Published = req.Published
	if err := database.DB.Save(&article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update article"})
	}

	return c.JSON(article)
}

func DeleteArticle(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var article models.Article
	if err := database.DB.First(&article, "id = ?", c.Params("articleId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Article not found"})
	}
	if article.AuthorID != user.ID && user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this article"})
	}

	if err := database.DB.Delete(&article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete article"})
	}
	return c.JSON(fiber.Map{"message": "Article deleted"})
}

func ListArticles(c *fiber.Ctx) error {
	page, offset := pageParams(c, defaultPageSize)

	query := database.DB.Model(&models.Article{}).
		Preload("Author").
		Where("published = ?", true)
	if q := c.Query("q"); q != "" {
		query = query.Where("title ILIKE ?", "%"+q+"%")
	}

	switch c.Query("filter") {
	case "popular":
		query = query.Order("views desc, created_at desc")
	default: // newest
		query = query.Order("created_at desc")
	}

	var articles []models.Article
	if err := query.Limit(defaultPageSize + 1).Offset(offset).Find(&articles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch articles"})
	}

	hasNext := hasNextPage(len(articles), defaultPageSize)
	if hasNext {
		articles = articles[:defaultPageSize]
	}

	return c.JSON(fiber.Map{"articles": articles, "page": page, "has_next": hasNext})
}

// GetArticle fetches a published article by slug and bumps its view count.
func GetArticle(c *fiber.Ctx) error {
	var article models.Article
	if err := database.DB.Preload("Author").
		First(&article, "slug = ? AND published = ?", c.Params("slug"), true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Article not found"})
	}

	database.DB.Model(&article).Update("views", gorm.Expr("views + 1"))
	article.Views++

	return c.JSON(article)
}
