package entity

import "time"

type PromotionStatus string

const (
	PromotionStatusActive   PromotionStatus = "Active"
	PromotionStatusInactive PromotionStatus = "Inactive"
)

func IsValidPromotionStatus(status string) bool {
	switch PromotionStatus(status) {
	case PromotionStatusActive, PromotionStatusInactive:
		return true
	default:
		return false
	}
}

type Promotion struct {
	ID              string          `db:"id"`
	Title           string          `db:"title"`
	DiscountPercent float64         `db:"discount_percent"`
	Status          PromotionStatus `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
