package handlers

import (
	"time"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/gofiber/fiber/v2"
)

type EventRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"required,min=10"`
	Location    string `json:"location" validate:"required"`
	StartTime   string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime     string `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// SubmitEvent queues a community event for admin approval.
func SubmitEvent(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)
	if !startTime.Before(endTime) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start time must be before end time"})
	}
	if startTime.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Event cannot start in the past"})
	}

	event := models.Event{
		SubmitterID: user.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   startTime,
		EndTime:     endTime,
		Status:      models.EventPending,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit event"})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// ListEvents shows approved upcoming events. Public.
func ListEvents(c *fiber.Ctx) error {
	page, offset := pageParams(c, defaultPageSize)

	query := database.DB.Model(&models.Event{}).
		Where("status = ? AND end_time > ?", models.EventApproved, time.Now()).
		Order("start_time asc")
	if q := c.Query("q"); q != "" {
		query = query.Where("title ILIKE ?", "%"+q+"%")
	}

	var events []models.Event
	if err := query.Limit(defaultPageSize + 1).Offset(offset).Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch events"})
	}

	hasNext := hasNextPage(len(events), defaultPageSize)
	if hasNext {
		events = events[:defaultPageSize]
	}

	return c.JSON(fiber.Map{"events": events, "page": page, "has_next": hasNext})
}

func ListPendingEvents(c *fiber.Ctx) error {
	var events []models.Event
	err := database.DB.Preload("Submitter").
		Where("status = ?", models.EventPending).
		Order("created_at asc").
		Find(&events).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch events"})
	}
	return c.JSON(events)
}

type ReviewEventRequest struct {
	Approve bool `json:"approve"`
}

func ReviewEvent(c *fiber.Ctx) error {
	var req ReviewEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var event models.Event
	if err := database.DB.First(&event, "id = ?", c.Params("eventId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}
	if event.Status != models.EventPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Event has already been reviewed"})
	}

	if req.Approve {
		event.Status = models.EventApproved
	} else {
		event.Status = models.EventRejected
	}
	if err := database.DB.Save(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to review event"})
	}

	return c.JSON(event)
}
