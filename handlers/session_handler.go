package handlers

import (
	"log"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadSessionForParticipant fetches a session and checks the caller is the
// mentee or the mentor behind it.
func loadSessionForParticipant(c *fiber.Ctx, user models.User) (*models.Session, bool, error) {
	var session models.Session
	err := database.DB.
		Preload("Mentor").
		Preload("Mentee").
		First(&session, "id = ?", c.Params("sessionId")).Error
	if err != nil {
		return nil, false, err
	}

	isMentor := session.Mentor.UserID == user.ID
	if !isMentor && session.MenteeID != user.ID {
		return nil, false, gorm.ErrRecordNotFound
	}
	return &session, isMentor, nil
}

func GetMySessions(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var mentorIDs []string
	if err := database.DB.Model(&models.Mentor{}).Where("user_id = ?", user.ID).Pluck("id", &mentorIDs).Error; err != nil {
		log.Printf("Error fetching mentor ids for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch sessions"})
	}

	query := database.DB.Preload("Mentor.User").Preload("Mentee").Order("start_time desc")
	if len(mentorIDs) > 0 {
		query = query.Where("mentee_id = ? OR mentor_id IN ?", user.ID, mentorIDs)
	} else {
		query = query.Where("mentee_id = ?", user.ID)
	}

	var sessions []models.Session
	if err := query.Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch sessions"})
	}
	return c.JSON(sessions)
}

func GetSession(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	session, _, err := loadSessionForParticipant(c, user)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	return c.JSON(session)
}

// StartSession moves a scheduled session in progress. Mentor only.
func StartSession(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	session, isMentor, err := loadSessionForParticipant(c, user)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	if !isMentor {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the mentor can start a session"})
	}
	if !session.CanTransition(models.SessionInProgress) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Session is not scheduled"})
	}

	session.Status = models.SessionInProgress
	if err := database.DB.Save(session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start session"})
	}
	return c.JSON(session)
}

type CompleteSessionRequest struct {
	Rating   *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Feedback *string `json:"feedback,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// CompleteSession finishes an in-progress session, folds an optional rating
// into the mentor's aggregates and marks the owning request completed.
func CompleteSession(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CompleteSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session, isMentor, err := loadSessionForParticipant(c, user)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	if !isMentor {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the mentor can complete a session"})
	}
	if !session.CanTransition(models.SessionCompleted) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Only an in-progress session can be completed"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		session.Status = models.SessionCompleted
		session.Rating = req.Rating
		session.Feedback = req.Feedback
		if req.Notes != nil {
			session.Notes = req.Notes
		}
		if err := tx.Save(session).Error; err != nil {
			return err
		}

		var mentor models.Mentor
		if err := tx.First(&mentor, "id = ?", session.MentorID).Error; err != nil {
			return err
		}
		mentor.ApplyCompletedSession(req.Rating)
		if err := tx.Save(&mentor).Error; err != nil {
			return err
		}

		return tx.Model(&models.MentorshipRequest{}).
			Where("id = ? AND status = ?", session.RequestID, models.RequestAccepted).
			Update("status", models.RequestCompleted).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete session"})
	}

	return c.JSON(session)
}

// CancelSession cancels a session that has not finished. Either party.
func CancelSession(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	session, _, err := loadSessionForParticipant(c, user)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	if !session.CanTransition(models.SessionCancelled) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Session can no longer be cancelled"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		session.Status = models.SessionCancelled
		if err := tx.Save(session).Error; err != nil {
			return err
		}
		return tx.Model(&models.MentorshipRequest{}).
			Where("id = ? AND status = ?", session.RequestID, models.RequestAccepted).
			Update("status", models.RequestCancelled).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel session"})
	}

	return c.JSON(session)
}

type MeetingLinkRequest struct {
	MeetingLink string `json:"meeting_link" validate:"required,url"`
}

func SetMeetingLink(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req MeetingLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session, isMentor, err := loadSessionForParticipant(c, user)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	if !isMentor {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the mentor can set the meeting link"})
	}
	if models.SessionStatusTerminal(session.Status) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Session has already ended"})
	}

	session.MeetingLink = &req.MeetingLink
	if err := database.DB.Save(session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save meeting link"})
	}
	return c.JSON(session)
}
