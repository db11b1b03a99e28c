package handlers

import (
	"log"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/anyango/dev_circle/services"
	"github.com/gofiber/fiber/v2"
)

// aiFallbackDraft is returned whenever the inference API call fails.
const aiFallbackDraft = "We couldn't generate an AI draft right now. " +
	"In the meantime: break the problem into the smallest reproducible case, " +
	"check the relevant documentation, and share what you've tried so the " +
	"community can help faster."

// GenerateAIAnswer drafts an answer for a question via the inference API.
// A downstream failure degrades to the fallback draft, never an error.
func GenerateAIAnswer(c *fiber.Ctx) error {
	if _, err := currentUser(c); err != nil {
		return unauthorized(c)
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ?", c.Params("questionId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	draft, err := services.GenerateAnswerDraft(c.Context(), question.Title, question.Content)
	if err != nil {
		log.Printf("AI draft generation failed for question %s: %v", question.ID, err)
		return c.JSON(fiber.Map{"draft": aiFallbackDraft, "generated": false})
	}

	return c.JSON(fiber.Map{"draft": draft, "generated": true})
}
