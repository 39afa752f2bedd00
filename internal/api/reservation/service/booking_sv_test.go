package reservationService

import (
	authRepository "HotelGolang/internal/api/auth/repository"
	"HotelGolang/internal/api/reservation"
	reservationRepository "HotelGolang/internal/api/reservation/repository"
	"HotelGolang/internal/api/room"
	roomRepository "HotelGolang/internal/api/room/repository"
	"HotelGolang/internal/entity"
	"HotelGolang/pkg/utils"
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeBookingStore struct {
	bookings    map[string]entity.Booking
	deleteCalls int
	createErr   error
	deleteErr   error
}

func (f *fakeBookingStore) CreateBooking(_ context.Context, b entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingStore) GetByID(_ context.Context, id string) (entity.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return entity.Booking{}, reservation.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingStore) GetAll(_ context.Context) ([]entity.Booking, error) {
	out := make([]entity.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingStore) GetByUserID(_ context.Context, userID string) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) UpdateStatus(_ context.Context, id string, status entity.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return reservation.ErrBookingNotFound
	}
	b.Status = status
	f.bookings[id] = b
	return nil
}

func (f *fakeBookingStore) DeleteBooking(_ context.Context, id string) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.bookings[id]; !ok {
		return reservation.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

type fakePaymentStore struct {
	payments    map[string]entity.Payment
	deleteCalls int
	createErr   error
	deleteErr   error
}

func (f *fakePaymentStore) CreatePayment(_ context.Context, p entity.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentStore) GetByID(_ context.Context, id string) (entity.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return entity.Payment{}, reservation.ErrPaymentNotFound
	}
	return p, nil
}

func (f *fakePaymentStore) GetAll(_ context.Context) ([]entity.Payment, error) {
	out := make([]entity.Payment, 0, len(f.payments))
	for _, p := range f.payments {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePaymentStore) GetByUserID(_ context.Context, _ string) ([]entity.Payment, error) {
	return nil, nil
}

func (f *fakePaymentStore) GetSalesRows(_ context.Context) ([]entity.Payment, error) {
	return f.GetAll(nil)
}

func (f *fakePaymentStore) UpdateStatus(_ context.Context, id string, status entity.PaymentStatus, method entity.PaymentMethod) error {
	p, ok := f.payments[id]
	if !ok {
		return reservation.ErrPaymentNotFound
	}
	p.Status = status
	p.Method = method
	f.payments[id] = p
	return nil
}

func (f *fakePaymentStore) DeleteByBookingID(_ context.Context, bookingID string) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for id, p := range f.payments {
		if p.BookingID == bookingID {
			delete(f.payments, id)
		}
	}
	return nil
}

type fakeReservationRepo struct {
	bookings  *fakeBookingStore
	payments  *fakePaymentStore
	clients   int
	commits   int
	rollbacks int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		bookings: &fakeBookingStore{bookings: map[string]entity.Booking{}},
		payments: &fakePaymentStore{payments: map[string]entity.Payment{}},
	}
}

func (f *fakeReservationRepo) NewClient(_ bool) (reservationRepository.Client, error) {
	f.clients++
	committed := false
	return reservationRepository.Client{
		Bookings: f.bookings,
		Payments: f.payments,
		Commit: func() error {
			f.commits++
			committed = true
			return nil
		},
		Rollback: func() error {
			f.rollbacks++
			// sql.Tx reports ErrTxDone when the tx already committed.
			if committed {
				return sql.ErrTxDone
			}
			return nil
		},
	}, nil
}

type fakeRoomStore struct {
	rooms map[string]entity.Room
}

func (f *fakeRoomStore) CreateRoom(_ context.Context, rm entity.Room) error {
	f.rooms[rm.ID] = rm
	return nil
}

func (f *fakeRoomStore) GetByID(_ context.Context, id string) (entity.Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return entity.Room{}, room.ErrRoomNotFound
	}
	return rm, nil
}

func (f *fakeRoomStore) GetAll(_ context.Context) ([]entity.Room, error) { return nil, nil }

func (f *fakeRoomStore) UpdateRoom(_ context.Context, _ entity.Room) error { return nil }

func (f *fakeRoomStore) UpdateStatus(_ context.Context, _ string, _ entity.RoomStatus) error {
	return nil
}

func (f *fakeRoomStore) DeleteRoom(_ context.Context, _ string) error { return nil }

type fakeRoomRepo struct {
	rooms   *fakeRoomStore
	clients int
}

func (f *fakeRoomRepo) NewClient(_ bool) (roomRepository.Client, error) {
	f.clients++
	return roomRepository.Client{
		Rooms:    f.rooms,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeUserStore struct {
	users map[string]entity.User
}

func (f *fakeUserStore) CreateUser(_ context.Context, u entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return entity.User{}, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, _ string) (entity.User, error) {
	return entity.User{}, errors.New("user not found")
}

type fakeAuthRepo struct {
	users *fakeUserStore
}

func (f *fakeAuthRepo) NewClient(_ bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.users,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeMailer struct {
	calls int
	err   error
}

func (f *fakeMailer) SendBookingConfirmation(_ string, _ string, _ string, _ time.Time, _ time.Time) error {
	f.calls++
	return f.err
}

const testRoomID = "01J0R44MAAAAAAAAAAAAAAAAAA"

func newTestService(t *testing.T) (ReservationService, *fakeReservationRepo, *fakeRoomRepo, *fakeMailer) {
	t.Helper()

	roomRepo := &fakeRoomRepo{rooms: &fakeRoomStore{rooms: map[string]entity.Room{
		testRoomID: {ID: testRoomID, Name: "Deluxe Suite", Price: 4500},
	}}}
	reservationRepo := newFakeReservationRepo()
	authRepo := &fakeAuthRepo{users: &fakeUserStore{users: map[string]entity.User{}}}
	mailer := &fakeMailer{}

	svc := New(testLogger(), reservationRepo, roomRepo, authRepo, mailer, utils.New())
	return svc, reservationRepo, roomRepo, mailer
}

func guestUser() entity.UserLoginData {
	return entity.UserLoginData{
		ID:       "01J0GUESTULIDAAAAAAAAAAAAA",
		FullName: "Maria Santos",
		Email:    "maria@example.com",
		Role:     entity.RoleGuest,
	}
}

func TestSubmitBookingDefaultsCheckOut(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	_, err := svc.SubmitBooking(context.Background(), guestUser(), reservation.CreateBookingRequest{
		RoomID:  testRoomID,
		CheckIn: "2025-06-10",
	})
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}

	if len(repo.bookings.bookings) != 1 {
		t.Fatalf("booking count = %d, want 1", len(repo.bookings.bookings))
	}
	for _, b := range repo.bookings.bookings {
		wantOut := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
		if !b.CheckOut.Equal(wantOut) {
			t.Errorf("check_out = %v, want %v", b.CheckOut, wantOut)
		}
		if b.Status != entity.BookingStatusPending {
			t.Errorf("status = %q, want Pending", b.Status)
		}
	}
}

func TestSubmitBookingCreatesPaymentWithRoomPrice(t *testing.T) {
	svc, repo, _, mailer := newTestService(t)

	_, err := svc.SubmitBooking(context.Background(), guestUser(), reservation.CreateBookingRequest{
		RoomID:   testRoomID,
		CheckIn:  "2025-06-10",
		CheckOut: "2025-06-12",
	})
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}

	if len(repo.payments.payments) != 1 {
		t.Fatalf("payment count = %d, want 1", len(repo.payments.payments))
	}
	for _, p := range repo.payments.payments {
		if p.Amount != 4500 {
			t.Errorf("amount = %v, want room price 4500", p.Amount)
		}
		if p.Status != entity.PaymentStatusPending {
			t.Errorf("payment status = %q, want Pending", p.Status)
		}
	}

	if repo.commits != 1 {
		t.Errorf("commits = %d, want 1", repo.commits)
	}
	if mailer.calls != 1 {
		t.Errorf("confirmation emails = %d, want 1", mailer.calls)
	}
}

func TestSubmitBookingPaymentFailureLeavesNoBooking(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	repo.payments.createErr = errors.New("disk full")

	_, err := svc.SubmitBooking(context.Background(), guestUser(), reservation.CreateBookingRequest{
		RoomID:  testRoomID,
		CheckIn: "2025-06-10",
	})
	if err == nil {
		t.Fatal("expected error from payment insert")
	}

	if repo.commits != 0 {
		t.Errorf("commits = %d, want 0", repo.commits)
	}
	if repo.rollbacks == 0 {
		t.Error("expected a rollback")
	}
}

func TestSuccessfulTransactionsLogNoRollbackError(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	roomRepo := &fakeRoomRepo{rooms: &fakeRoomStore{rooms: map[string]entity.Room{
		testRoomID: {ID: testRoomID, Name: "Deluxe Suite", Price: 4500},
	}}}
	reservationRepo := newFakeReservationRepo()
	authRepo := &fakeAuthRepo{users: &fakeUserStore{users: map[string]entity.User{}}}
	svc := New(log, reservationRepo, roomRepo, authRepo, &fakeMailer{}, utils.New())
	user := guestUser()

	list, err := svc.SubmitBooking(context.Background(), user, reservation.CreateBookingRequest{
		RoomID:  testRoomID,
		CheckIn: "2025-06-10",
	})
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	if _, err := svc.CancelBooking(context.Background(), user, list[0].ID); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	if reservationRepo.commits != 2 {
		t.Errorf("commits = %d, want 2", reservationRepo.commits)
	}
	if strings.Contains(buf.String(), "Failed to rollback") {
		t.Errorf("committed transaction logged a rollback failure:\n%s", buf.String())
	}
}

func TestSubmitBookingSMTPFailureIsSoft(t *testing.T) {
	svc, repo, _, mailer := newTestService(t)
	mailer.err = errors.New("smtp unreachable")

	_, err := svc.SubmitBooking(context.Background(), guestUser(), reservation.CreateBookingRequest{
		RoomID:  testRoomID,
		CheckIn: "2025-06-10",
	})
	if err != nil {
		t.Fatalf("SubmitBooking must survive a mail failure, got %v", err)
	}
	if len(repo.bookings.bookings) != 1 {
		t.Errorf("booking count = %d, want 1", len(repo.bookings.bookings))
	}
}

func TestSubmitWalkInBookingRejectsBadIdentifiers(t *testing.T) {
	tests := []struct {
		name   string
		roomID string
		userID string
	}{
		{"malformed room id", "not-an-id", ""},
		{"sql in room id", "1; DROP TABLE bookings", ""},
		{"malformed user id", testRoomID, "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reservationRepo, roomRepo, _ := newTestService(t)

			_, err := svc.SubmitWalkInBooking(context.Background(), reservation.CreateWalkInBookingRequest{
				RoomID:    tt.roomID,
				UserID:    tt.userID,
				GuestName: "Walk In",
				CheckIn:   "2025-06-10",
			})
			if !errors.Is(err, reservation.ErrInvalidIdentifier) {
				t.Fatalf("err = %v, want ErrInvalidIdentifier", err)
			}

			// Syntax failures never reach a store.
			if roomRepo.clients != 0 || reservationRepo.clients != 0 {
				t.Errorf("store touched: room clients = %d, reservation clients = %d",
					roomRepo.clients, reservationRepo.clients)
			}
		})
	}
}

func TestSubmitWalkInBookingAcceptsUUIDAndULID(t *testing.T) {
	svc, _, roomRepo, _ := newTestService(t)

	uuidRoom := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	roomRepo.rooms.rooms[uuidRoom] = entity.Room{ID: uuidRoom, Name: "Standard", Price: 2000}

	for _, roomID := range []string{testRoomID, uuidRoom} {
		_, err := svc.SubmitWalkInBooking(context.Background(), reservation.CreateWalkInBookingRequest{
			RoomID:    roomID,
			GuestName: "Walk In",
			CheckIn:   "2025-06-10",
		})
		if err != nil {
			t.Errorf("room id %q rejected: %v", roomID, err)
		}
	}
}

func TestCancelBookingDeletesPaymentsFirst(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	user := guestUser()

	list, err := svc.SubmitBooking(context.Background(), user, reservation.CreateBookingRequest{
		RoomID:  testRoomID,
		CheckIn: "2025-06-10",
	})
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	bookingID := list[0].ID

	if _, err := svc.CancelBooking(context.Background(), user, bookingID); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	if len(repo.bookings.bookings) != 0 {
		t.Errorf("bookings remaining = %d, want 0", len(repo.bookings.bookings))
	}
	if len(repo.payments.payments) != 0 {
		t.Errorf("payments remaining = %d, want 0", len(repo.payments.payments))
	}
}

func TestCancelBookingPaymentDeleteFailureKeepsBooking(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	user := guestUser()

	list, err := svc.SubmitBooking(context.Background(), user, reservation.CreateBookingRequest{
		RoomID:  testRoomID,
		CheckIn: "2025-06-10",
	})
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	bookingID := list[0].ID

	repo.payments.deleteErr = errors.New("lock timeout")

	if _, err := svc.CancelBooking(context.Background(), user, bookingID); err == nil {
		t.Fatal("expected cancellation to fail")
	}

	if repo.bookings.deleteCalls != 0 {
		t.Errorf("booking delete called %d times, want 0", repo.bookings.deleteCalls)
	}
	if len(repo.bookings.bookings) != 1 {
		t.Errorf("bookings remaining = %d, want 1", len(repo.bookings.bookings))
	}
	if len(repo.payments.payments) != 1 {
		t.Errorf("payments remaining = %d, want 1", len(repo.payments.payments))
	}
}

func TestCancelBookingOwnershipEnforcedForGuests(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	owner := guestUser()

	list, err := svc.SubmitBooking(context.Background(), owner, reservation.CreateBookingRequest{
		RoomID:  testRoomID,
		CheckIn: "2025-06-10",
	})
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}

	stranger := entity.UserLoginData{
		ID:       "01J0STRANGERULIDAAAAAAAAAA",
		FullName: "Someone Else",
		Role:     entity.RoleGuest,
	}

	if _, err := svc.CancelBooking(context.Background(), stranger, list[0].ID); !errors.Is(err, reservation.ErrBookingNotOwned) {
		t.Fatalf("err = %v, want ErrBookingNotOwned", err)
	}
}

func TestUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	err := svc.UpdateBookingStatus(context.Background(), "some-id", "Teleported")
	if !errors.Is(err, reservation.ErrInvalidBookingStatus) {
		t.Fatalf("err = %v, want ErrInvalidBookingStatus", err)
	}
}
