package feedback

import (
	"HotelGolang/pkg/response"
	"net/http"
)

var (
	ErrFeedbackNotFound = response.NewError(http.StatusNotFound, "feedback not found")
	ErrNoCurrentUser    = response.NewError(http.StatusUnauthorized, "you must be logged in to send feedback")
)
