package chatbotHandler

import (
	"HotelGolang/internal/api/chatbot"
	"HotelGolang/internal/entity"
	"context"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

// HandleChatSocket runs one dialogue turn per received text frame and
// answers with the bot reply. The session travels in the session_id
// query parameter; authentication happened before the upgrade.
func (h *ChatbotHandler) HandleChatSocket(conn *websocket.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			h.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("Failed to close chat socket")
		}
	}()

	userData, ok := conn.Locals("user").(entity.UserLoginData)
	if !ok {
		_ = conn.WriteJSON(map[string]string{"error": "Unauthorized"})
		return
	}

	sessionID := conn.Query("session_id")
	if sessionID == "" {
		_ = conn.WriteJSON(map[string]string{"error": "session_id query parameter is required"})
		return
	}

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		reply, session, err := h.chatbotService.SendMessage(c, userData, sessionID, string(payload))
		cancel()
		if err != nil {
			if writeErr := conn.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				return
			}
			continue
		}

		if reply == nil {
			continue
		}

		if err := conn.WriteJSON(chatbot.MessageResponse{
			Reply:    reply,
			Messages: session.Messages,
		}); err != nil {
			return
		}
	}
}
