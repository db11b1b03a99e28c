package handlers

import (
	"errors"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ExpertProfileRequest struct {
	ExpertiseAreas  string  `json:"expertise_areas" validate:"required"`
	YearsExperience int     `json:"years_experience" validate:"min=0,max=60"`
	Company         *string `json:"company,omitempty"`
}

// CreateExpertProfile applies for expert status. A user holds at most one
// profile; a second call is a conflict.
func CreateExpertProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req ExpertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.ExpertProfile
	err = database.DB.Where("user_id = ?", user.ID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Expert profile already exists"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	profile := models.ExpertProfile{
		UserID:          user.ID,
		ExpertiseAreas:  req.ExpertiseAreas,
		YearsExperience: req.YearsExperience,
		Company:         req.Company,
		Status:          models.ExpertPending,
	}
	if err := database.DB.Create(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create expert profile"})
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// GetExpertStatus reports whether the caller has an expert profile and
// where it stands in review.
func GetExpertStatus(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var profile models.ExpertProfile
	err = database.DB.Where("user_id = ?", user.ID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(fiber.Map{"has_profile": false})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"has_profile": true,
		"status":      profile.Status,
		"verified":    profile.Verified,
	})
}

func ListPendingExpertProfiles(c *fiber.Ctx) error {
	var profiles []models.ExpertProfile
	err := database.DB.Preload("User").
		Where("status = ?", models.ExpertPending).
		Order("created_at asc").
		Find(&profiles).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profiles"})
	}
	return c.JSON(profiles)
}

type ReviewExpertRequest struct {
	Approve bool `json:"approve"`
}

// ReviewExpertProfile approves or rejects a pending application. Approval
// also promotes the user's role so expert-only routes open up.
func ReviewExpertProfile(c *fiber.Ctx) error {
	var req ReviewExpertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var profile models.ExpertProfile
	if err := database.DB.First(&profile, "id = ?", c.Params("profileId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expert profile not found"})
	}
	if profile.Status != models.ExpertPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Profile has already been reviewed"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if req.Approve {
			profile.Status = models.ExpertApproved
			profile.Verified = true
			if err := tx.Model(&models.User{}).
				Where("id = ?", profile.UserID).
				Update("role", models.RoleExpert).Error; err != nil {
				return err
			}
		} else {
			profile.Status = models.ExpertRejected
		}
		return tx.Save(&profile).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to review profile"})
	}

	return c.JSON(profile)
}
