package handlers

import (
	"errors"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MentorProfileRequest struct {
	Specializations string  `json:"specializations" validate:"required"`
	Bio             string  `json:"bio" validate:"required,min=20"`
	HourlyRate      float64 `json:"hourly_rate" validate:"gte=0"`
}

// BecomeMentor opts the caller in to mentoring.
func BecomeMentor(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req MentorProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.Mentor
	err = database.DB.Where("user_id = ?", user.ID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already have a mentor profile."})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	mentor := models.Mentor{
		UserID:          user.ID,
		Specializations: req.Specializations,
		Bio:             &req.Bio,
		HourlyRate:      req.HourlyRate,
	}
	if err := database.DB.Create(&mentor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create mentor profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(mentor)
}

func UpdateMyMentorProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req MentorProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var mentor models.Mentor
	if err := database.DB.Where("user_id = ?", user.ID).First(&mentor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}

	mentor.Specializations = req.Specializations
	mentor.Bio = &req.Bio
	mentor.HourlyRate = req.HourlyRate
	if err := database.DB.Save(&mentor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update mentor profile"})
	}

	return c.JSON(mentor)
}

type AvailabilityWindowRequest struct {
	Weekday   int    `json:"weekday" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

func AddAvailabilityWindow(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req AvailabilityWindowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.StartTime >= req.EndTime {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start time must be before end time"})
	}

	var mentor models.Mentor
	if err := database.DB.Where("user_id = ?", user.ID).First(&mentor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}

	window := models.AvailabilityWindow{
		MentorID:  mentor.ID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := database.DB.Create(&window).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add availability"})
	}

	return c.Status(fiber.StatusCreated).JSON(window)
}

func DeleteAvailabilityWindow(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var mentor models.Mentor
	if err := database.DB.Where("user_id = ?", user.ID).First(&mentor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor profile not found"})
	}

	result := database.DB.
		Where("id = ? AND mentor_id = ?", c.Params("windowId"), mentor.ID).
		Delete(&models.AvailabilityWindow{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete availability"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Availability window not found"})
	}

	return c.JSON(fiber.Map{"message": "Availability window deleted"})
}

func ListMentors(c *fiber.Ctx) error {
	page, offset := pageParams(c, defaultPageSize)

	query := database.DB.Model(&models.Mentor{}).Preload("User").Where("active = ?", true)
	if q := c.Query("q"); q != "" {
		query = query.Where("specializations ILIKE ?", "%"+q+"%")
	}

	switch c.Query("filter") {
	case "most_sessions":
		query = query.Order("total_sessions desc, created_at asc")
	case "top_rated":
		query = query.Order("avg_rating desc, total_sessions desc")
	default: // newest
		query = query.Order("created_at desc")
	}

	var mentors []models.Mentor
	if err := query.Limit(defaultPageSize + 1).Offset(offset).Find(&mentors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch mentors"})
	}

	hasNext := hasNextPage(len(mentors), defaultPageSize)
	if hasNext {
		mentors = mentors[:defaultPageSize]
	}

	return c.JSON(fiber.Map{"mentors": mentors, "page": page, "has_next": hasNext})
}

func GetMentor(c *fiber.Ctx) error {
	var mentor models.Mentor
	if err := database.DB.
		Preload("User").
		Preload("Availability").
		First(&mentor, "id = ?", c.Params("mentorId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}
	return c.JSON(mentor)
}

// VerifyMentor marks a mentor profile as verified. Admin only.
func VerifyMentor(c *fiber.Ctx) error {
	var mentor models.Mentor
	if err := database.DB.First(&mentor, "id = ?", c.Params("mentorId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	mentor.Verified = true
	if err := database.DB.Save(&mentor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify mentor"})
	}
	return c.JSON(mentor)
}

// DeactivateMentor hides a mentor from listings and blocks new requests.
// Mentors are never hard-deleted so existing requests keep resolving.
func DeactivateMentor(c *fiber.Ctx) error {
	var mentor models.Mentor
	if err := database.DB.First(&mentor, "id = ?", c.Params("mentorId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mentor not found"})
	}

	mentor.Active = false
	if err := database.DB.Save(&mentor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate mentor"})
	}
	return c.JSON(fiber.Map{"message": "Mentor deactivated"})
}
