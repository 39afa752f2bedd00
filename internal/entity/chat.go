package entity

import "time"

type ChatSender string

const (
	ChatSenderBot  ChatSender = "bot"
	ChatSenderUser ChatSender = "user"
)

type ChatMessage struct {
	Sender ChatSender `json:"sender"`
	Text   string     `json:"text"`
}

// ChatSession holds a dialogue transcript plus at most one pending
// follow-up prompt. PendingPrompt is non-empty only immediately after a
// command whose workflow entry declared a follow-up, and is consumed by
// the very next user message regardless of its content.
type ChatSession struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Role          Role          `json:"role"`
	Messages      []ChatMessage `json:"messages"`
	PendingPrompt string        `json:"pending_prompt,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
