package room

import (
	"HotelGolang/pkg/response"
	"net/http"
)

var (
	ErrRoomNotFound      = response.NewError(http.StatusNotFound, "room not found")
	ErrRoomNameTaken     = response.NewError(http.StatusConflict, "room name already exists")
	ErrInvalidRoomStatus = response.NewError(http.StatusBadRequest, "invalid room status")
	ErrInvalidImageFile  = response.NewError(http.StatusBadRequest, "uploaded file is not a valid image")
	ErrRoomInUse         = response.NewError(http.StatusConflict, "room has existing bookings")
)
