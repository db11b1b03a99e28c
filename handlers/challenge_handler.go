package handlers

import (
	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/gofiber/fiber/v2"
)

type ChallengeRequest struct {
	Title       string  `json:"title" validate:"required,min=5,max=255"`
	Difficulty  string  `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Prompt      string  `json:"prompt" validate:"required,min=20"`
	StarterCode *string `json:"starter_code,omitempty"`
	Solution    *string `json:"solution,omitempty"`
}

// CreateChallenge posts a code challenge. Expert only.
func CreateChallenge(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req ChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	challenge := models.CodeChallenge{
		AuthorID:    user.ID,
		Title:       req.Title,
		Difficulty:  req.Difficulty,
		Prompt:      req.Prompt,
		StarterCode: req.StarterCode,
		Solution:    req.Solution,
	}
	if err := database.DB.Create(&challenge).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create challenge"})
	}

	return c.Status(fiber.StatusCreated).JSON(challenge)
}

func UpdateChallenge(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req ChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var challenge models.CodeChallenge
	if err := database.DB.First(&challenge, "id = ?", c.Params("challengeId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Challenge not found"})
	}
	if challenge.AuthorID != user.ID && user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this challenge"})
	}

	challenge.Title = req.Title
	challenge.Difficulty = req.Difficulty
	challenge.Prompt = req.Prompt
	challenge.StarterCode = req.StarterCode
	challenge.Solution = req.Solution
	if err := database.DB.Save(&challenge).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update challenge"})
	}

	return c.JSON(challenge)
}

func DeleteChallenge(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var challenge models.CodeChallenge
	if err := database.DB.First(&challenge, "id = ?", c.Params("challengeId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Challenge not found"})
	}
	if challenge.AuthorID != user.ID && user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the author of this challenge"})
	}

	if err := database.DB.Delete(&challenge).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete challenge"})
	}
	return c.JSON(fiber.Map{"message": "Challenge deleted"})
}

// ListChallenges is public; solutions are stripped from the output.
func ListChallenges(c *fiber.Ctx) error {
	page, offset := pageParams(c, defaultPageSize)

	query := database.DB.Model(&models.CodeChallenge{}).Order("created_at desc")
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("title ILIKE ?", "%"+q+"%")
	}

	var challenges []models.CodeChallenge
	if err := query.Limit(defaultPageSize + 1).Offset(offset).Find(&challenges).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch challenges"})
	}

	hasNext := hasNextPage(len(challenges), defaultPageSize)
	if hasNext {
		challenges = challenges[:defaultPageSize]
	}
	for i := range challenges {
		challenges[i].Solution = nil
	}

	return c.JSON(fiber.Map{"challenges": challenges, "page": page, "has_next": hasNext})
}

func GetChallenge(c *fiber.Ctx) error {
	var challenge models.CodeChallenge
	if err := database.DB.Preload("Author").
		First(&challenge, "id = ?", c.Params("challengeId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Challenge not found"})
	}

	// Solutions stay hidden unless the caller authored the challenge.
	user, err := currentUser(c)
	if err != nil || challenge.AuthorID != user.ID {
		challenge.Solution = nil
	}

	return c.JSON(challenge)
}
