package promotion

import (
	"HotelGolang/pkg/response"
	"net/http"
)

var (
	ErrPromotionNotFound      = response.NewError(http.StatusNotFound, "promotion not found")
	ErrNoActivePromotion      = response.NewError(http.StatusNotFound, "no active promotion")
	ErrInvalidPromotionStatus = response.NewError(http.StatusBadRequest, "invalid promotion status")
)
