package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "Pending"
	BookingStatusConfirmed  BookingStatus = "Confirmed"
	BookingStatusCheckedIn  BookingStatus = "Checked In"
	BookingStatusCheckedOut BookingStatus = "Checked Out"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

func IsValidBookingStatus(status string) bool {
	switch BookingStatus(status) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn,
		BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

type Booking struct {
	ID        string        `db:"id"`
	UserID    string        `db:"user_id"`
	GuestName string        `db:"guest_name"`
	RoomID    string        `db:"room_id"`
	RoomName  string        `db:"room_name"`
	CheckIn   time.Time     `db:"check_in"`
	CheckOut  time.Time     `db:"check_out"`
	Status    BookingStatus `db:"status"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

func IsValidPaymentStatus(status string) bool {
	switch PaymentStatus(status) {
	case PaymentStatusPending, PaymentStatusPaid:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentMethodGCash PaymentMethod = "GCash"
	PaymentMethodCash  PaymentMethod = "Cash"
)

func IsValidPaymentMethod(method string) bool {
	switch PaymentMethod(method) {
	case PaymentMethodGCash, PaymentMethodCash:
		return true
	default:
		return false
	}
}

type Payment struct {
	ID        string        `db:"id"`
	BookingID string        `db:"booking_id"`
	GuestName string        `db:"guest_name"`
	Amount    float64       `db:"amount"`
	Method    PaymentMethod `db:"method"`
	Status    PaymentStatus `db:"status"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}
