package reservationService

import (
	authRepository "HotelGolang/internal/api/auth/repository"
	"HotelGolang/internal/api/reservation"
	reservationRepository "HotelGolang/internal/api/reservation/repository"
	roomRepository "HotelGolang/internal/api/room/repository"
	"HotelGolang/internal/entity"
	"HotelGolang/pkg/smtp"
	"HotelGolang/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type ReservationService interface {
	SubmitBooking(c context.Context, user entity.UserLoginData, req reservation.CreateBookingRequest) ([]entity.Booking, error)
	SubmitWalkInBooking(c context.Context, req reservation.CreateWalkInBookingRequest) ([]entity.Booking, error)
	GetBookings(c context.Context, user entity.UserLoginData) ([]entity.Booking, error)
	UpdateBookingStatus(c context.Context, id string, status string) error
	CancelBooking(c context.Context, user entity.UserLoginData, id string) ([]entity.Booking, error)

	GetPayments(c context.Context, user entity.UserLoginData) ([]entity.Payment, error)
	UpdatePaymentStatus(c context.Context, id string, req reservation.UpdatePaymentStatusRequest) error
	CreateManualPayment(c context.Context, req reservation.CreatePaymentRequest) (entity.Payment, error)
}

type reservationService struct {
	log             *logrus.Logger
	reservationRepo reservationRepository.Repository
	roomRepo        roomRepository.Repository
	authRepo        authRepository.Repository
	smtpMailer      smtp.ItfSmtp
	utils           utils.IUtils
}

func New(
	log *logrus.Logger,
	reservationRepo reservationRepository.Repository,
	roomRepo roomRepository.Repository,
	authRepo authRepository.Repository,
	smtpMailer smtp.ItfSmtp,
	utils utils.IUtils) ReservationService {
	return &reservationService{
		log:             log,
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		authRepo:        authRepo,
		smtpMailer:      smtpMailer,
		utils:           utils,
	}
}
