package room

import "time"

type CreateRoomRequest struct {
	Name        string  `form:"name" validate:"required,min=1,max=255"`
	Type        string  `form:"type" validate:"required,min=1,max=100"`
	Price       float64 `form:"price" validate:"required,gte=0"`
	Status      string  `form:"status" validate:"omitempty"`
	Description string  `form:"description" validate:"omitempty,max=2000"`
}

type UpdateRoomRequest struct {
	Name        string   `form:"name" validate:"omitempty,min=1,max=255"`
	Type        string   `form:"type" validate:"omitempty,min=1,max=100"`
	Price       *float64 `form:"price" validate:"omitempty,gte=0"`
	Status      string   `form:"status" validate:"omitempty"`
	Description *string  `form:"description" validate:"omitempty,max=2000"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RoomResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
