package reservationService

import (
	"HotelGolang/internal/api/reservation"
	"HotelGolang/internal/entity"
	contextPkg "HotelGolang/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *reservationService) GetPayments(c context.Context, user entity.UserLoginData) ([]entity.Payment, error) {
	repo, err := s.reservationRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	if user.Role == entity.RoleGuest {
		return repo.Payments.GetByUserID(c, user.ID)
	}

	return repo.Payments.GetAll(c)
}

func (s *reservationService) UpdatePaymentStatus(c context.Context, id string, req reservation.UpdatePaymentStatusRequest) error {
	requestID := contextPkg.GetRequestID(c)

	if !entity.IsValidPaymentStatus(req.Status) {
		return reservation.ErrInvalidPaymentStatus
	}

	status := entity.PaymentStatus(req.Status)
	method := entity.PaymentMethod(req.Method)

	switch status {
	case entity.PaymentStatusPaid:
		if req.Method == "" {
			return reservation.ErrMethodRequiredWhenPaid
		}
		if !entity.IsValidPaymentMethod(req.Method) {
			return reservation.ErrInvalidPaymentMethod
		}
	case entity.PaymentStatusPending:
		// Reverting to pending clears the method as well.
		method = ""
	}

	repo, err := s.reservationRepo.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Payments.UpdateStatus(c, id, status, method); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"payment_id": id,
		"status":     status,
		"method":     method,
	}).Info("Payment status updated")

	return nil
}

func (s *reservationService) CreateManualPayment(c context.Context, req reservation.CreatePaymentRequest) (entity.Payment, error) {
	requestID := contextPkg.GetRequestID(c)

	if !entity.IsValidPaymentStatus(req.Status) {
		return entity.Payment{}, reservation.ErrInvalidPaymentStatus
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Payment{}, err
	}

	payment := entity.Payment{
		ID:        id,
		GuestName: req.GuestName,
		Amount:    req.Amount,
		Status:    entity.PaymentStatus(req.Status),
	}

	repo, err := s.reservationRepo.NewClient(false)
	if err != nil {
		return entity.Payment{}, err
	}

	if err := repo.Payments.CreatePayment(c, payment); err != nil {
		return entity.Payment{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"payment_id": id,
		"amount":     req.Amount,
	}).Info("Manual payment recorded")

	return repo.Payments.GetByID(c, id)
}
