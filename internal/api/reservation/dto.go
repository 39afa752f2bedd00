package reservation

import "time"

type CreateBookingRequest struct {
	RoomID   string `json:"room_id" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"omitempty,datetime=2006-01-02"`
}

type CreateWalkInBookingRequest struct {
	RoomID    string `json:"room_id" validate:"required"`
	UserID    string `json:"user_id" validate:"omitempty"`
	GuestName string `json:"guest_name" validate:"required,min=1,max=255"`
	CheckIn   string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut  string `json:"check_out" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Method string `json:"method" validate:"omitempty"`
}

type CreatePaymentRequest struct {
	GuestName string  `json:"guest_name" validate:"required,min=1,max=255"`
	Amount    float64 `json:"amount" validate:"required,gte=0"`
	Status    string  `json:"status" validate:"required"`
}

type BookingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	GuestName string    `json:"guest_name"`
	RoomID    string    `json:"room_id"`
	RoomName  string    `json:"room_name"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type PaymentResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id,omitempty"`
	GuestName string    `json:"guest_name"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
