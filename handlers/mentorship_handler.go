package handlers

import (
	"fmt"
	"time"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/anyango/dev_circle/notifications"
	"github.com/anyango/dev_circle/websocket"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateRequestRequest struct {
	MentorID        string   `json:"mentor_id" validate:"required,uuid"`
	Topic           string   `json:"topic" validate:"required,min=3,max=255"`
	Description     string   `json:"description" validate:"required,min=10"`
	ProposedTimes   []string `json:"proposed_times" validate:"required,min=1,max=5,dive,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes int      `json:"duration_minutes" validate:"required,min=15,max=240"`
}

func CreateMentorshipRequest(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var mentor models.Mentor
	if err := database.DB.Preload("User").First(&mentor, "id = ? AND active = ?", req.MentorID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}
	if mentor.UserID == user.ID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot request mentorship from yourself"})
	}

	now := time.Now()
	proposed := make([]models.ProposedTime, 0, len(req.ProposedTimes))
	for _, raw := range req.ProposedTimes {
		t, _ := time.Parse(time.RFC3339, raw)
		if t.Before(now) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Proposed times must be in the future"})
		}
		proposed = append(proposed, models.ProposedTime{At: t})
	}

	request := models.MentorshipRequest{
		MenteeID:        user.ID,
		MentorID:        mentor.ID,
		Topic:           req.Topic,
		Description:     req.Description,
		Status:          models.RequestPending,
		ProposedTimes:   proposed,
		DurationMinutes: req.DurationMinutes,
	}
	if err := database.DB.Create(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create request"})
	}

	go notifications.SendEmail(mentor.User.Name, mentor.User.Email,
		"New Mentorship Request",
		fmt.Sprintf("<h1>New Request</h1><p>%s has requested a mentorship session on <b>%s</b>.</p>", user.Name, request.Topic))

	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetMyRequests lists the caller's requests, as mentee by default or as
// mentor with ?as=mentor.
func GetMyRequests(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	query := database.DB.Preload("ProposedTimes").Order("created_at desc")
	if c.Query("as") == "mentor" {
		var mentor models.Mentor
		if err := database.DB.Where("user_id = ?", user.ID).First(&mentor).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
		}
		query = query.Preload("Mentee").Where("mentor_id = ?", mentor.ID)
	} else {
		query = query.Preload("Mentor.User").Where("mentee_id = ?", user.ID)
	}

	var requests []models.MentorshipRequest
	if err := query.Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch requests"})
	}
	return c.JSON(requests)
}

// loadRequestForParticipant fetches a request with its thread and checks the
// caller is the mentee or the mentor behind it.
func loadRequestForParticipant(c *fiber.Ctx, user models.User) (*models.MentorshipRequest, bool, error) {
	var request models.MentorshipRequest
	err := database.DB.
		Preload("ProposedTimes").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("request_messages.created_at asc")
		}).
		Preload("Mentor.User").
		Preload("Mentee").
		First(&request, "id = ?", c.Params("requestId")).Error
	if err != nil {
		return nil, false, err
	}

	isMentor := request.Mentor.UserID == user.ID
	if !isMentor && request.MenteeID != user.ID {
		return nil, false, fmt.Errorf("not a participant")
	}
	return &request, isMentor, nil
}

func GetMentorshipRequest(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	request, _, err := loadRequestForParticipant(c, user)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}
	return c.JSON(request)
}

type AcceptRequestRequest struct {
	SelectedTime string  `json:"selected_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	MeetingLink  *string `json:"meeting_link,omitempty" validate:"omitempty,url"`
}

// AcceptRequest moves a pending request to accepted and derives its session.
// The selected time must be one of the mentee's proposed candidates.
func AcceptRequest(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req AcceptRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	request, isMentor, err := loadRequestForParticipant(c, user)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}
	if !isMentor {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the mentor can accept a request"})
	}
	if !request.CanTransition(models.RequestAccepted) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Request is not pending"})
	}

	selected, _ := time.Parse(time.RFC3339, req.SelectedTime)
	if !request.HasProposedTime(selected) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Selected time must be one of the proposed times"})
	}

	var session models.Session
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		request.Status = models.RequestAccepted
		request.SelectedTime = &selected
		if err := tx.Save(request).Error; err != nil {
			return err
		}

		session = models.Session{
			RequestID:   request.ID,
			MentorID:    request.MentorID,
			MenteeID:    request.MenteeID,
			StartTime:   selected,
			EndTime:     selected.Add(time.Duration(request.DurationMinutes) * time.Minute),
			Status:      models.SessionScheduled,
			MeetingLink: req.MeetingLink,
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to accept request"})
	}

	go notifications.SendEmail(request.Mentee.Name, request.Mentee.Email,
		"Your Mentorship Request Was Accepted",
		fmt.Sprintf("<h1>Request Accepted</h1><p>Your session on <b>%s</b> is scheduled for %s.</p>",
			request.Topic, selected.Format(time.RFC1123)))

	return c.JSON(fiber.Map{"request": request, "session": session})
}

func RejectRequest(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	request, isMentor, err := loadRequestForParticipant(c, user)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}
	if !isMentor {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the mentor can reject a request"})
	}
	if !request.CanTransition(models.RequestRejected) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Request is not pending"})
	}

	request.Status = models.RequestRejected
	if err := database.DB.Save(request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reject request"})
	}
	return c.JSON(request)
}

// CancelRequest withdraws a pending or accepted request. Either party may
// cancel; an already-derived scheduled session is cancelled with it.
func CancelRequest(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	request, _, err := loadRequestForParticipant(c, user)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}
	if !request.CanTransition(models.RequestCancelled) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Request can no longer be cancelled"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		request.Status = models.RequestCancelled
		if err := tx.Save(request).Error; err != nil {
			return err
		}
		return tx.Model(&models.Session{}).
			Where("request_id = ? AND status IN ?", request.ID,
				[]string{models.SessionScheduled, models.SessionInProgress}).
			Update("status", models.SessionCancelled).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel request"})
	}

	return c.JSON(request)
}

type MessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// AddMessage appends to the request's message thread. Messages are never
// edited or deleted.
func AddMessage(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	request, _, err := loadRequestForParticipant(c, user)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}

	message := models.RequestMessage{
		RequestID: request.ID,
		SenderID:  user.ID,
		Content:   req.Content,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}

	websocket.Broadcast <- &message

	return c.Status(fiber.StatusCreated).JSON(message)
}
