package reservation

import (
	"HotelGolang/pkg/response"
	"net/http"
)

var (
	ErrBookingNotFound        = response.NewError(http.StatusNotFound, "booking not found")
	ErrPaymentNotFound        = response.NewError(http.StatusNotFound, "payment not found")
	ErrInvalidBookingStatus   = response.NewError(http.StatusBadRequest, "invalid booking status")
	ErrInvalidPaymentStatus   = response.NewError(http.StatusBadRequest, "invalid payment status")
	ErrInvalidPaymentMethod   = response.NewError(http.StatusBadRequest, "invalid payment method")
	ErrInvalidIdentifier      = response.NewError(http.StatusBadRequest, "identifier is not a valid id")
	ErrInvalidDate            = response.NewError(http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
	ErrCheckOutBeforeCheckIn  = response.NewError(http.StatusBadRequest, "check-out date must be after check-in")
	ErrBookingNotOwned        = response.NewError(http.StatusForbidden, "booking does not belong to user")
	ErrMethodRequiredWhenPaid = response.NewError(http.StatusBadRequest, "payment method is required when settling")
)
