package chatbot

import (
	"HotelGolang/internal/entity"
	"time"
)

type SendMessageRequest struct {
	// Blank text is a valid no-op turn, so only the length is validated.
	Text string `json:"text" validate:"max=500"`
}

type SessionResponse struct {
	ID        string               `json:"id"`
	Role      string               `json:"role"`
	Messages  []entity.ChatMessage `json:"messages"`
	CreatedAt time.Time            `json:"created_at"`
}

type MessageResponse struct {
	Reply    *entity.ChatMessage  `json:"reply,omitempty"`
	Messages []entity.ChatMessage `json:"messages"`
}
