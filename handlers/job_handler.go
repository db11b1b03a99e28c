package handlers

import (
	"time"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/gofiber/fiber/v2"
)

type JobRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=255"`
	Company     string  `json:"company" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Description string  `json:"description" validate:"required"`
	ApplyURL    *string `json:"apply_url,omitempty" validate:"omitempty,url"`
}

// CreateJob posts a job listing. Admin only.
func CreateJob(c *fiber.Ctx) error {
	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	job := models.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		ApplyURL:    req.ApplyURL,
		PostedAt:    time.Now(),
	}
	if err := database.DB.Create(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create job"})
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

func GetJob(c *fiber.Ctx) error {
	var job models.Job
	if err := database.DB.First(&job, "id = ?", c.Params("jobId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	return c.JSON(job)
}

func ListJobs(c *fiber.Ctx) error {
	page, offset := pageParams(c, defaultPageSize)

	query := database.DB.Model(&models.Job{}).Order("posted_at desc")
	if q := c.Query("q"); q != "" {
		query = query.Where("title ILIKE ?", "%"+q+"%")
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}

	var jobs []models.Job
	if err := query.Limit(defaultPageSize + 1).Offset(offset).Find(&jobs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch jobs"})
	}

	hasNext := hasNextPage(len(jobs), defaultPageSize)
	if hasNext {
		jobs = jobs[:defaultPageSize]
	}

	return c.JSON(fiber.Map{"jobs": jobs, "page": page, "has_next": hasNext})
}
