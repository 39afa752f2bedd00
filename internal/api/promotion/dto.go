package promotion

import "time"

type CreatePromotionRequest struct {
	Title           string  `json:"title" validate:"required,min=1,max=255"`
	DiscountPercent float64 `json:"discount_percent" validate:"required,gt=0,lte=100"`
	Status          string  `json:"status" validate:"omitempty"`
}

type UpdatePromotionRequest struct {
	Title           string   `json:"title" validate:"omitempty,min=1,max=255"`
	DiscountPercent *float64 `json:"discount_percent" validate:"omitempty,gt=0,lte=100"`
	Status          string   `json:"status" validate:"omitempty"`
}

type PromotionResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	DiscountPercent float64   `json:"discount_percent"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
