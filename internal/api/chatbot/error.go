package chatbot

import (
	"HotelGolang/pkg/response"
	"net/http"
)

var (
	ErrSessionNotFound = response.NewError(http.StatusNotFound, "chat session not found")
	ErrSessionNotOwned = response.NewError(http.StatusForbidden, "chat session belongs to another user")
	ErrUnknownRole     = response.NewError(http.StatusBadRequest, "unknown chat role")
)
