package feedback

import "time"

type CreateFeedbackRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type FeedbackResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
