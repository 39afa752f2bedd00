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

type PaymentDB struct {
	ID        sql.NullString  `db:"id"`
	BookingID sql.NullString  `db:"booking_id"`
	GuestName sql.NullString  `db:"guest_name"`
	Amount    sql.NullFloat64 `db:"amount"`
	Method    sql.NullString  `db:"method"`
	Status    sql.NullString  `db:"status"`
	CreatedAt sql.NullTime    `db:"created_at"`
	UpdatedAt sql.NullTime    `db:"updated_at"`
}

func (r *paymentRepository) CreatePayment(c context.Context, payment entity.Payment) error {
	requestID := contextPkg.GetRequestID(c)

	var bookingID interface{}
	if payment.BookingID != "" {
		bookingID = payment.BookingID
	}

	var guestName interface{}
	if payment.GuestName != "" {
		guestName = payment.GuestName
	}

	argsKV := map[string]interface{}{
		"id":         payment.ID,
		"booking_id": bookingID,
		"guest_name": guestName,
		"amount":     payment.Amount,
		"method":     string(payment.Method),
		"status":     string(payment.Status),
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreatePayment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreatePayment")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating payment")
		return err
	}

	return nil
}

func (r *paymentRepository) GetByID(c context.Context, id string) (entity.Payment, error) {
	requestID := contextPkg.GetRequestID(c)
	var row PaymentDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPaymentByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Payment{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Payment{}, reservation.ErrPaymentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Payment{}, err
	}

	return r.makePayment(row), nil
}

func (r *paymentRepository) GetAll(c context.Context) ([]entity.Payment, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []PaymentDB

	query := r.q.Rebind(queryGetAllPayments)
	if err := r.q.SelectContext(c, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll execution err")
		return nil, err
	}

	payments := make([]entity.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, r.makePayment(row))
	}

	return payments, nil
}

func (r *paymentRepository) GetByUserID(c context.Context, userID string) ([]entity.Payment, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []PaymentDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetPaymentsByUserID, argsKV)
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

	payments := make([]entity.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, r.makePayment(row))
	}

	return payments, nil
}

// GetSalesRows returns every payment with the best guest name the
// joins can produce, oldest first, for the sales report.
func (r *paymentRepository) GetSalesRows(c context.Context) ([]entity.Payment, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []PaymentDB

	query := r.q.Rebind(queryGetSalesRows)
	if err := r.q.SelectContext(c, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSalesRows execution err")
		return nil, err
	}

	payments := make([]entity.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, r.makePayment(row))
	}

	return payments, nil
}

func (r *paymentRepository) UpdateStatus(c context.Context, id string, status entity.PaymentStatus, method entity.PaymentMethod) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         id,
		"status":     string(status),
		"method":     string(method),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdatePaymentStatus, argsKV)
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
		}).Error("Database error when updating payment status")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return reservation.ErrPaymentNotFound
	}

	return nil
}

func (r *paymentRepository) DeleteByBookingID(c context.Context, bookingID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"booking_id": bookingID,
	}

	query, args, err := sqlx.Named(queryDeletePaymentsByBookingID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteByBookingID")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting payments for booking")
		return err
	}

	return nil
}

func (r *paymentRepository) makePayment(row PaymentDB) entity.Payment {
	return entity.Payment{
		ID:        row.ID.String,
		BookingID: row.BookingID.String,
		GuestName: row.GuestName.String,
		Amount:    row.Amount.Float64,
		Method:    entity.PaymentMethod(row.Method.String),
		Status:    entity.PaymentStatus(row.Status.String),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
