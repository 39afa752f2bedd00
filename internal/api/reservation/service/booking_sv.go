package reservationService

import (
	"HotelGolang/internal/api/reservation"
	"HotelGolang/internal/entity"
	contextPkg "HotelGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

func (s *reservationService) SubmitBooking(c context.Context, user entity.UserLoginData, req reservation.CreateBookingRequest) ([]entity.Booking, error) {
	requestID := contextPkg.GetRequestID(c)

	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	roomClient, err := s.roomRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	bookedRoom, err := roomClient.Rooms.GetByID(c, req.RoomID)
	if err != nil {
		return nil, err
	}

	booking := entity.Booking{
		UserID:    user.ID,
		GuestName: user.FullName,
		RoomID:    bookedRoom.ID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Status:    entity.BookingStatusPending,
	}

	if err := s.createBookingWithPayment(c, booking, bookedRoom.Price); err != nil {
		return nil, err
	}

	// Confirmation mail is best-effort. The booking stands either way.
	if err := s.smtpMailer.SendBookingConfirmation(user.Email, user.FullName, bookedRoom.Name, checkIn, checkOut); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
			"error":      err.Error(),
		}).Warn("Failed to send booking confirmation email")
	}

	repo, err := s.reservationRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Bookings.GetByUserID(c, user.ID)
}

func (s *reservationService) SubmitWalkInBooking(c context.Context, req reservation.CreateWalkInBookingRequest) ([]entity.Booking, error) {
	requestID := contextPkg.GetRequestID(c)

	// Identifier syntax is checked before any store round trip.
	if !isValidIdentifier(req.RoomID) {
		return nil, reservation.ErrInvalidIdentifier
	}
	if req.UserID != "" && !isValidIdentifier(req.UserID) {
		return nil, reservation.ErrInvalidIdentifier
	}

	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	roomClient, err := s.roomRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	bookedRoom, err := roomClient.Rooms.GetByID(c, req.RoomID)
	if err != nil {
		return nil, err
	}

	if req.UserID != "" {
		authClient, err := s.authRepo.NewClient(false)
		if err != nil {
			return nil, err
		}
		if _, err := authClient.Users.GetByID(c, req.UserID); err != nil {
			return nil, err
		}
	}

	booking := entity.Booking{
		UserID:    req.UserID,
		GuestName: req.GuestName,
		RoomID:    bookedRoom.ID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Status:    entity.BookingStatusPending,
	}

	if err := s.createBookingWithPayment(c, booking, bookedRoom.Price); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"room_id":    req.RoomID,
		"guest_name": req.GuestName,
	}).Info("Walk-in booking created")

	repo, err := s.reservationRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return repo.Bookings.GetAll(c)
}

// createBookingWithPayment inserts the booking and its payment row in
// one transaction so a failed payment insert never leaves an orphan
// booking behind.
func (s *reservationService) createBookingWithPayment(c context.Context, booking entity.Booking, roomPrice float64) error {
	requestID := contextPkg.GetRequestID(c)

	bookingID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}
	paymentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	booking.ID = bookingID

	repo, err := s.reservationRepo.NewClient(true)
	if err != nil {
		return err
	}
	// Rollback after Commit reports sql.ErrTxDone, which is not a failure.
	defer func() {
		if err := repo.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to rollback booking transaction")
		}
	}()

	if err := repo.Bookings.CreateBooking(c, booking); err != nil {
		return err
	}

	payment := entity.Payment{
		ID:        paymentID,
		BookingID: bookingID,
		Amount:    roomPrice,
		Status:    entity.PaymentStatusPending,
	}

	if err := repo.Payments.CreatePayment(c, payment); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit booking transaction")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"booking_id": bookingID,
		"payment_id": paymentID,
		"amount":     roomPrice,
	}).Info("Booking and payment created")

	return nil
}

func (s *reservationService) GetBookings(c context.Context, user entity.UserLoginData) ([]entity.Booking, error) {
	repo, err := s.reservationRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	if user.Role == entity.RoleGuest {
		return repo.Bookings.GetByUserID(c, user.ID)
	}

	return repo.Bookings.GetAll(c)
}

func (s *reservationService) UpdateBookingStatus(c context.Context, id string, status string) error {
	if !entity.IsValidBookingStatus(status) {
		return reservation.ErrInvalidBookingStatus
	}

	repo, err := s.reservationRepo.NewClient(false)
	if err != nil {
		return err
	}

	return repo.Bookings.UpdateStatus(c, id, entity.BookingStatus(status))
}

func (s *reservationService) CancelBooking(c context.Context, user entity.UserLoginData, id string) ([]entity.Booking, error) {
	requestID := contextPkg.GetRequestID(c)

	lookup, err := s.reservationRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	booking, err := lookup.Bookings.GetByID(c, id)
	if err != nil {
		return nil, err
	}

	if user.Role == entity.RoleGuest && booking.UserID != user.ID {
		return nil, reservation.ErrBookingNotOwned
	}

	// Payments go first. If their delete fails the transaction leaves
	// both the booking and its payment intact.
	repo, err := s.reservationRepo.NewClient(true)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := repo.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to rollback cancellation transaction")
		}
	}()

	if err := repo.Payments.DeleteByBookingID(c, id); err != nil {
		return nil, err
	}

	if err := repo.Bookings.DeleteBooking(c, id); err != nil {
		return nil, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit cancellation transaction")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"booking_id": id,
	}).Info("Booking cancelled")

	return s.GetBookings(c, user)
}

// parseStayDates applies the one-night default when no check-out date
// was given.
func parseStayDates(checkInRaw, checkOutRaw string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(dateLayout, checkInRaw)
	if err != nil {
		return time.Time{}, time.Time{}, reservation.ErrInvalidDate
	}

	checkOut := checkIn.AddDate(0, 0, 1)
	if checkOutRaw != "" {
		checkOut, err = time.Parse(dateLayout, checkOutRaw)
		if err != nil {
			return time.Time{}, time.Time{}, reservation.ErrInvalidDate
		}
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, reservation.ErrCheckOutBeforeCheckIn
	}

	return checkIn, checkOut, nil
}

// isValidIdentifier accepts the two id layouts the store uses: UUIDv4
// and ULID.
func isValidIdentifier(raw string) bool {
	if parsed, err := uuid.Parse(raw); err == nil {
		return parsed.Version() == 4
	}
	if _, err := ulid.ParseStrict(raw); err == nil {
		return true
	}
	return false
}
