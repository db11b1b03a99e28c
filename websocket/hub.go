package websocket

import (
	"log"
	"sync"

	"github.com/anyango/dev_circle/database"
	"github.com/anyango/dev_circle/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// threadConn is the slice of *websocket.Conn the hub needs.
type threadConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

var clients = make(map[uuid.UUID]threadConn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.RequestMessage, 16)

// RunHub delivers new mentorship-thread messages to the connected
// counterpart of each request.
func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == threadConn(client.Conn) {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case message := <-Broadcast:
			deliver(message)
		}
	}
}

func deliver(message *models.RequestMessage) {
	var request models.MentorshipRequest
	err := database.DB.Preload("Mentor").First(&request, "id = ?", message.RequestID).Error
	if err != nil {
		log.Printf("Error fetching request %s for message delivery: %v", message.RequestID, err)
		return
	}

	broadcastTo([]uuid.UUID{request.MenteeID, request.Mentor.UserID}, message.SenderID, message)
}

// broadcastTo writes the payload to each connected recipient except the
// sender. Connections that fail to write are closed and dropped so later
// broadcasts stop hitting them.
func broadcastTo(recipients []uuid.UUID, senderID uuid.UUID, payload interface{}) {
	stale := make(map[uuid.UUID]threadConn)

	clientsMu.RLock()
	for _, recipientID := range recipients {
		if recipientID == senderID {
			continue
		}
		conn, ok := clients[recipientID]
		if !ok {
			continue
		}
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("Error sending message to client %s: %v", recipientID, err)
			conn.Close()
			stale[recipientID] = conn
		}
	}
	clientsMu.RUnlock()

	if len(stale) == 0 {
		return
	}
	clientsMu.Lock()
	for id, conn := range stale {
		// The user may have reconnected in the meantime.
		if clients[id] == conn {
			delete(clients, id)
		}
	}
	clientsMu.Unlock()
}
