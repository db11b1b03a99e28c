package handlers

import (
	"fmt"
	"log"

	config "github.com/anyango/dev_circle/configs"
	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	ws "github.com/anyango/dev_circle/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.Config("AUTH_JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// ServeWs upgrades a connection for live mentorship-thread updates. The
// first frame must be an auth message carrying the provider JWT.
func ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}
	sub, _ := claims["sub"].(string)

	var user models.User
	if err := database.DB.Where("external_id = ?", sub).First(&user).Error; err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Unknown user"})
		c.Close()
		return
	}

	client := &ws.Client{UserID: user.ID, Conn: c}
	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		c.Close()
	}()

	type IncomingMessage struct {
		RequestID string `json:"request_id"`
		Content   string `json:"content"`
	}
	for {
		var in IncomingMessage
		if err := c.ReadJSON(&in); err != nil {
			return
		}
		if in.Content == "" {
			continue
		}
		requestID, err := uuid.Parse(in.RequestID)
		if err != nil {
			_ = c.WriteJSON(fiber.Map{"error": "Invalid request id"})
			continue
		}

		var request models.MentorshipRequest
		if err := database.DB.Preload("Mentor").First(&request, "id = ?", requestID).Error; err != nil {
			_ = c.WriteJSON(fiber.Map{"error": "Request not found"})
			continue
		}
		if request.MenteeID != user.ID && request.Mentor.UserID != user.ID {
			_ = c.WriteJSON(fiber.Map{"error": "Not a participant of this request"})
			continue
		}

		message := models.RequestMessage{
			RequestID: requestID,
			SenderID:  user.ID,
			Content:   in.Content,
		}
		if err := database.DB.Create(&message).Error; err != nil {
			log.Printf("Error persisting thread message: %v", err)
			continue
		}
		ws.Broadcast <- &message
	}
}
