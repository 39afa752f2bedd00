package reservationRepository

const (
	queryCreateBooking = `
INSERT INTO bookings (id, user_id, guest_name, room_id, check_in, check_out, status, created_at, updated_at)
VALUES (:id, :user_id, :guest_name, :room_id, :check_in, :check_out, :status, :created_at, :updated_at)`

	queryGetBookingByID = `
SELECT b.id, b.user_id, b.guest_name, b.room_id, r.name AS room_name,
       b.check_in, b.check_out, b.status, b.created_at, b.updated_at
FROM bookings b
    LEFT JOIN rooms r ON r.id = b.room_id
WHERE b.id = :id`

	queryGetAllBookings = `
SELECT b.id, b.user_id, b.guest_name, b.room_id, r.name AS room_name,
       b.check_in, b.check_out, b.status, b.created_at, b.updated_at
FROM bookings b
    LEFT JOIN rooms r ON r.id = b.room_id
ORDER BY b.created_at DESC`

	queryGetBookingsByUserID = `
SELECT b.id, b.user_id, b.guest_name, b.room_id, r.name AS room_name,
       b.check_in, b.check_out, b.status, b.created_at, b.updated_at
FROM bookings b
    LEFT JOIN rooms r ON r.id = b.room_id
WHERE b.user_id = :user_id
ORDER BY b.created_at DESC`

	queryUpdateBookingStatus = `
UPDATE bookings
SET status = :status,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteBooking = `
DELETE FROM bookings
    WHERE id = :id`

	queryCreatePayment = `
INSERT INTO payments (id, booking_id, guest_name, amount, method, status, created_at, updated_at)
VALUES (:id, :booking_id, :guest_name, :amount, :method, :status, :created_at, :updated_at)`

	queryGetPaymentByID = `
SELECT p.id, p.booking_id, COALESCE(p.guest_name, b.guest_name) AS guest_name,
       p.amount, p.method, p.status, p.created_at, p.updated_at
FROM payments p
    LEFT JOIN bookings b ON b.id = p.booking_id
WHERE p.id = :id`

	queryGetAllPayments = `
SELECT p.id, p.booking_id, COALESCE(p.guest_name, b.guest_name) AS guest_name,
       p.amount, p.method, p.status, p.created_at, p.updated_at
FROM payments p
    LEFT JOIN bookings b ON b.id = p.booking_id
ORDER BY p.created_at DESC`

	queryGetPaymentsByUserID = `
SELECT p.id, p.booking_id, COALESCE(p.guest_name, b.guest_name) AS guest_name,
       p.amount, p.method, p.status, p.created_at, p.updated_at
FROM payments p
    JOIN bookings b ON b.id = p.booking_id
WHERE b.user_id = :user_id
ORDER BY p.created_at DESC`

	queryGetSalesRows = `
SELECT p.id, p.booking_id, COALESCE(p.guest_name, b.guest_name, u.full_name) AS guest_name,
       p.amount, p.method, p.status, p.created_at, p.updated_at
FROM payments p
    LEFT JOIN bookings b ON b.id = p.booking_id
    LEFT JOIN users u ON u.id = b.user_id
ORDER BY p.created_at ASC`

	queryUpdatePaymentStatus = `
UPDATE payments
SET status = :status,
    method = :method,
    updated_at = :updated_at
WHERE id = :id`

	queryDeletePaymentsByBookingID = `
DELETE FROM payments
    WHERE booking_id = :booking_id`
)
