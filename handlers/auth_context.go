package handlers

import (
	"errors"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

var validate = validator.New()

var errNoLocalUser = errors.New("no local user for subject")

// externalSubject extracts the provider-issued subject id from the verified
// token. Empty when the route was not behind Protected().
func externalSubject(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

func tokenClaim(c *fiber.Ctx, key string) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	v, _ := claims[key].(string)
	return v
}

// currentUser resolves the caller's external subject id to the local user
// record. Every protected handler goes through this before touching data.
func currentUser(c *fiber.Ctx) (models.User, error) {
	sub := externalSubject(c)
	if sub == "" {
		return models.User{}, errNoLocalUser
	}

	var user models.User
	err := database.DB.Where("external_id = ?", sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, errNoLocalUser
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
}
