package reservationHandler

import (
	reservationService "HotelGolang/internal/api/reservation/service"
	"HotelGolang/internal/entity"
	"HotelGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReservationHandler struct {
	log                *logrus.Logger
	reservationService reservationService.ReservationService
	validator          *validator.Validate
	middleware         middleware.Middleware
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	rs reservationService.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		log:                log,
		reservationService: rs,
		validator:          validate,
		middleware:         middleware,
	}
}

func (h *ReservationHandler) Start(srv fiber.Router) {
	bookings := srv.Group("/bookings", h.middleware.NewTokenMiddleware)
	bookings.Post("/", h.HandleSubmitBooking)
	bookings.Post("/walk-in", h.middleware.RequireRoles(entity.RoleAdmin, entity.RoleReceptionist), h.HandleSubmitWalkInBooking)
	bookings.Get("/", h.HandleGetBookings)
	bookings.Patch("/:id/status", h.middleware.RequireRoles(entity.RoleAdmin, entity.RoleReceptionist), h.HandleUpdateBookingStatus)
	bookings.Delete("/:id", h.HandleCancelBooking)

	payments := srv.Group("/payments", h.middleware.NewTokenMiddleware)
	payments.Get("/", h.HandleGetPayments)
	payments.Patch("/:id/status", h.middleware.RequireRoles(entity.RoleAdmin, entity.RoleReceptionist), h.HandleUpdatePaymentStatus)
	payments.Post("/", h.middleware.RequireRoles(entity.RoleAdmin), h.HandleCreatePayment)
}
