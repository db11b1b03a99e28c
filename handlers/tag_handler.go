package handlers

import (
	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/gofiber/fiber/v2"
)

func ListTags(c *fiber.Ctx) error {
	page, offset := pageParams(c, defaultPageSize)

	query := database.DB.Model(&models.Tag{})
	if q := c.Query("q"); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	switch c.Query("filter") {
	case "name":
		query = query.Order("name asc")
	case "old":
		query = query.Order("created_at asc")
	default: // popular
		query = query.
			Joins("LEFT JOIN question_tags ON question_tags.tag_id = tags.id").
			Group("tags.id").
			Order("count(question_tags.question_id) desc, tags.name asc")
	}

	var tags []models.Tag
	if err := query.Limit(defaultPageSize + 1).Offset(offset).Find(&tags).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch tags"})
	}

	hasNext := hasNextPage(len(tags), defaultPageSize)
	if hasNext {
		tags = tags[:defaultPageSize]
	}

	return c.JSON(fiber.Map{"tags": tags, "page": page, "has_next": hasNext})
}

// GetTagQuestions lists questions carrying a tag, newest first.
func GetTagQuestions(c *fiber.Ctx) error {
	var tag models.Tag
	if err := database.DB.First(&tag, "id = ?", c.Params("tagId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tag not found"})
	}

	page, offset := pageParams(c, defaultPageSize)

	var questions []models.Question
	err := database.DB.Model(&models.Question{}).
		Preload("Tags").
		Preload("Author").
		Joins("JOIN question_tags ON question_tags.question_id = questions.id").
		Where("question_tags.tag_id = ?", tag.ID).
		Order("questions.created_at desc").
		Limit(defaultPageSize + 1).
		Offset(offset).
		Find(&questions).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch questions"})
	}

	hasNext := hasNextPage(len(questions), defaultPageSize)
	if hasNext {
		questions = questions[:defaultPageSize]
	}

	return c.JSON(fiber.Map{"tag": tag, "questions": questions, "page": page, "has_next": hasNext})
}
