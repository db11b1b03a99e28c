package handlers

import (
	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AnswerRequest struct {
	Content string `json:"content" validate:"required,min=20"`
}

func CreateAnswer(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ?", c.Params("questionId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	answer := models.Answer{
		QuestionID: question.ID,
		AuthorID:   user.ID,
		Content:    req.Content,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}
		return tx.Model(&models.Question{}).
			Where("id = ?", question.ID).
			Update("answers", gorm.Expr("answers + 1")).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create answer"})
	}

	return c.Status(fiber.StatusCreated).JSON(answer)
}

func ListAnswers(c *fiber.Ctx) error {
	query := database.DB.Preload("Author").Where("question_id = ?", c.Params("questionId"))

	switch c.Query("filter") {
	case "old":
		query = query.Order("created_at asc")
	case "top":
		query = query.Order("upvotes desc, created_at asc")
	default: // recent
		query = query.Order("created_at desc")
	}

	var answers []models.Answer
	if err := query.Find(&answers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch answers"})
	}
	return c.JSON(answers)
}

func UpdateAnswer(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var answer models.Answer
	if err := database.DB.First(&answer, "id = ?", c.Params("answerId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Answer not found"})
	}
	if answer.AuthorID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this answer"})
	}

	answer.Content = req.Content
	if err := database.DB.Save(&answer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update answer"})
	}
	return c.JSON(answer)
}

func DeleteAnswer(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var answer models.Answer
	if err := database.DB.First(&answer, "id = ?", c.Params("answerId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Answer not found"})
	}
	if answer.AuthorID != user.ID && user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this answer"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&answer).Error; err != nil {
			return err
		}
		return tx.Model(&models.Question{}).
			Where("id = ? AND answers > 0", answer.QuestionID).
			Update("answers", gorm.Expr("answers - 1")).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete answer"})
	}

	return c.JSON(fiber.Map{"message": "Answer deleted"})
}
