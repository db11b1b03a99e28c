package handlers

import (
	"errors"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VoteRequest struct {
	Value int `json:"value" validate:"required,oneof=-1 1"`
}

func VoteQuestion(c *fiber.Ctx) error {
	return castVote(c, models.VoteTargetQuestion, c.Params("questionId"))
}

func VoteAnswer(c *fiber.Ctx) error {
	return castVote(c, models.VoteTargetAnswer, c.Params("answerId"))
}

func castVote(c *fiber.Ctx, targetType, targetIDStr string) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	targetID, err := uuid.Parse(targetIDStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var req VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var upvotes, downvotes int64
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing *int
		var vote models.Vote
		err := tx.Where("user_id = ? AND target_type = ? AND target_id = ?", user.ID, targetType, targetID).
			First(&vote).Error
		if err == nil {
			existing = &vote.Value
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		next := models.ResolveVote(existing, req.Value)
		up, down := models.VoteDeltas(existing, next)

		switch {
		case existing == nil && next != nil:
			if err := tx.Create(&models.Vote{
				UserID: user.ID, TargetType: targetType, TargetID: targetID, Value: *next,
			}).Error; err != nil {
				return err
			}
		case next == nil:
			if err := tx.Delete(&vote).Error; err != nil {
				return err
			}
		default:
			vote.Value = *next
			if err := tx.Save(&vote).Error; err != nil {
				return err
			}
		}

		return applyVoteCounters(tx, targetType, targetID, up, down, &upvotes, &downvotes)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Target not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record vote"})
	}

	return c.JSON(fiber.Map{"upvotes": upvotes, "downvotes": downvotes})
}

func applyVoteCounters(tx *gorm.DB, targetType string, targetID uuid.UUID, up, down int64, upOut, downOut *int64) error {
	if targetType == models.VoteTargetQuestion {
		var question models.Question
		if err := tx.First(&question, "id = ?", targetID).Error; err != nil {
			return err
		}
		question.Upvotes += up
		question.Downvotes += down
		if err := tx.Save(&question).Error; err != nil {
			return err
		}
		*upOut, *downOut = question.Upvotes, question.Downvotes
		return nil
	}

	var answer models.Answer
	if err := tx.First(&answer, "id = ?", targetID).Error; err != nil {
		return err
	}
	answer.Upvotes += up
	answer.Downvotes += down
	if err := tx.Save(&answer).Error; err != nil {
		return err
	}
	*upOut, *downOut = answer.Upvotes, answer.Downvotes
	return nil
}
