package chatbotService

import (
	"HotelGolang/internal/entity"
	"fmt"
	"strings"
)

const fallbackReply = "Sorry, I don't recognize that command."

// HandleInput advances a session by one turn and returns the bot reply,
// or nil when the input was blank after trimming. A pending follow-up
// prompt consumes the turn before any command lookup, whatever the
// input says.
func HandleInput(session *entity.ChatSession, raw string) *entity.ChatMessage {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	session.Messages = append(session.Messages, entity.ChatMessage{
		Sender: entity.ChatSenderUser,
		Text:   raw,
	})

	var reply entity.ChatMessage

	switch {
	case session.PendingPrompt != "":
		reply = entity.ChatMessage{
			Sender: entity.ChatSenderBot,
			Text:   fmt.Sprintf("Received: %q. %s", raw, session.PendingPrompt),
		}
		session.PendingPrompt = ""
	default:
		commandKey := strings.ToLower(strings.TrimSpace(raw))
		if step, ok := workflows[session.Role][commandKey]; ok {
			reply = entity.ChatMessage{
				Sender: entity.ChatSenderBot,
				Text:   step.Response,
			}
			session.PendingPrompt = step.Next
		} else {
			reply = entity.ChatMessage{
				Sender: entity.ChatSenderBot,
				Text:   fallbackReply,
			}
		}
	}

	session.Messages = append(session.Messages, reply)
	return &reply
}

// WelcomeMessage is the transcript opener for a fresh session.
func WelcomeMessage(role entity.Role) entity.ChatMessage {
	return entity.ChatMessage{
		Sender: entity.ChatSenderBot,
		Text:   fmt.Sprintf("Welcome, %s! Type a command to get started.", role),
	}
}
