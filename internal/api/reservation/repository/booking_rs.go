package reservationRepository

import (
	"HotelGolang/internal/api/reservation"
	"HotelGolang/internal/entity"
	contextPkg "HotelGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BookingDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	GuestName sql.NullString `db:"guest_name"`
	RoomID    sql.NullString `db:"room_id"`
	RoomName  sql.NullString `db:"room_name"`
	CheckIn   sql.NullTime   `db:"check_in"`
	CheckOut  sql.NullTime   `db:"check_out"`
	Status    sql.NullString `db:"status"`
	CreatedAt sql.NullTime   `db:"created_at"`
	UpdatedAt sql.NullTime   `db:"updated_at"`
}

func (r *bookingRepository) CreateBooking(c context.Context, booking entity.Booking) error {
	requestID := contextPkg.GetRequestID(c)

	var userID interface{}
	if booking.UserID != "" {
		userID = booking.UserID
	}

	argsKV := map[string]interface{}{
		"id":         booking.ID,
		"user_id":    userID,
		"guest_name": booking.GuestName,
		"room_id":    booking.RoomID,
		"check_in":   booking.CheckIn,
		"check_out":  booking.CheckOut,
		"status":     string(booking.Status),
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateBooking, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBooking")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating booking")
		return err
	}

	return nil
}

func (r *bookingRepository) GetByID(c context.Context, id string) (entity.Booking, error) {
	requestID := contextPkg.GetRequestID(c)
	var row BookingDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBookingByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Booking{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Booking{}, reservation.ErrBookingNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Booking{}, err
	}

	return r.makeBooking(row), nil
}

func (r *bookingRepository) GetAll(c context.Context) ([]entity.Booking, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []BookingDB

	query := r.q.Rebind(queryGetAllBookings)
	if err := r.q.SelectContext(c, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll execution err")
		return nil, err
	}

	bookings := make([]entity.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, r.makeBooking(row))
	}

	return bookings, nil
}

func (r *bookingRepository) GetByUserID(c context.Context, userID string) ([]entity.Booking, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []BookingDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetBookingsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID execution err")
		return nil, err
	}

	bookings := make([]entity.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, r.makeBooking(row))
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(c context.Context, id string, status entity.BookingStatus) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"status":     string(status),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBookingStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateStatus")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating booking status")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return reservation.ErrBookingNotFound
	}

	return nil
}

func (r *bookingRepository) DeleteBooking(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteBooking, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteBooking")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting booking")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return reservation.ErrBookingNotFound
	}

	return nil
}

func (r *bookingRepository) makeBooking(row BookingDB) entity.Booking {
	return entity.Booking{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		GuestName: row.GuestName.String,
		RoomID:    row.RoomID.String,
		RoomName:  row.RoomName.String,
		CheckIn:   row.CheckIn.Time,
		CheckOut:  row.CheckOut.Time,
		Status:    entity.BookingStatus(row.Status.String),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
