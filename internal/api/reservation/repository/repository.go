package reservationRepository

import (
	"HotelGolang/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Bookings: &bookingRepository{q: sqlExecutor, log: r.log},
		Payments: &paymentRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Bookings interface {
		CreateBooking(ctx context.Context, booking entity.Booking) error
		GetByID(ctx context.Context, id string) (entity.Booking, error)
		GetAll(ctx context.Context) ([]entity.Booking, error)
		GetByUserID(ctx context.Context, userID string) ([]entity.Booking, error)
		UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error
		DeleteBooking(ctx context.Context, id string) error
	}

	Payments interface {
		CreatePayment(ctx context.Context, payment entity.Payment) error
		GetByID(ctx context.Context, id string) (entity.Payment, error)
		GetAll(ctx context.Context) ([]entity.Payment, error)
		GetByUserID(ctx context.Context, userID string) ([]entity.Payment, error)
		GetSalesRows(ctx context.Context) ([]entity.Payment, error)
		UpdateStatus(ctx context.Context, id string, status entity.PaymentStatus, method entity.PaymentMethod) error
		DeleteByBookingID(ctx context.Context, bookingID string) error
	}

	Commit   func() error
	Rollback func() error
}

type bookingRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type paymentRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
