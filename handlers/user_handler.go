package handlers

import (
	"errors"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SyncUserRequest struct {
	Name       string  `json:"name" validate:"required"`
	Username   string  `json:"username" validate:"required,min=3,max=50"`
	Email      string  `json:"email" validate:"required,email"`
	PictureURL *string `json:"picture_url,omitempty"`
}

// SyncUser creates or refreshes the local record for the authenticated
// subject. The front end calls this right after sign-in with the provider.
func SyncUser(c *fiber.Ctx) error {
	sub := externalSubject(c)
	if sub == "" {
		return unauthorized(c)
	}

	var req SyncUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	err := database.DB.Where("external_id = ?", sub).First(&user).Error
	if err == nil {
		user.Name = req.Name
		user.Email = req.Email
		user.PictureURL = req.PictureURL
		if err := database.DB.Save(&user).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
		}
		return c.JSON(user)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	role := tokenClaim(c, "role")
	if role == "" {
		role = models.RoleMember
	}
	user = models.User{
		ExternalID: sub,
		Name:       req.Name,
		Username:   req.Username,
		Email:      req.Email,
		PictureURL: req.PictureURL,
		Role:       role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username is already taken"})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// LookupUserID resolves an external subject id to the local user id.
func LookupUserID(c *fiber.Ctx) error {
	if externalSubject(c) == "" {
		return unauthorized(c)
	}

	externalID := c.Query("external_id")
	if externalID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "external_id query parameter is required"})
	}

	var user models.User
	if err := database.DB.Where("external_id = ?", externalID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"user_id": user.ID})
}

func GetMe(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}
	return c.JSON(user)
}

type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Location     *string `json:"location,omitempty"`
	PortfolioURL *string `json:"portfolio_url,omitempty" validate:"omitempty,url"`
}

func UpdateMe(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Location != nil {
		user.Location = req.Location
	}
	if req.PortfolioURL != nil {
		user.PortfolioURL = req.PortfolioURL
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(user)
}

func GetUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Params("userId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=member expert admin"`
}

// AdminUpdateUserRole changes a user's role. Admin only.
func AdminUpdateUserRole(c *fiber.Ctx) error {
	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Params("userId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.Role = req.Role
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update role"})
	}
	return c.JSON(user)
}

// ListUsers searches users by name/username with a fixed sort per filter.
func ListUsers(c *fiber.Ctx) error {
	page, offset := pageParams(c, defaultPageSize)

	query := database.DB.Model(&models.User{})
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR username ILIKE ?", like, like)
	}

	switch c.Query("filter") {
	case "old_users":
		query = query.Order("created_at asc")
	case "top_contributors":
		query = query.Order("reputation desc, created_at asc")
	default: // new_users
		query = query.Order("created_at desc")
	}

	var users []models.User
	if err := query.Limit(defaultPageSize + 1).Offset(offset).Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	hasNext := hasNextPage(len(users), defaultPageSize)
	if hasNext {
		users = users[:defaultPageSize]
	}

	return c.JSON(fiber.Map{"users": users, "page": page, "has_next": hasNext})
}
