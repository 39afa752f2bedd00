package roomRepository

const (
	queryCreateRoom = `
INSERT INTO rooms (id, name, type, price, status, image_url, description, created_at, updated_at)
VALUES (:id, :name, :type, :price, :status, :image_url, :description, :created_at, :updated_at)`

	queryGetRoomByID = `
SELECT id, name, type, price, status, image_url, description, created_at, updated_at
FROM rooms
    WHERE id = :id`

	queryGetAllRooms = `
SELECT id, name, type, price, status, image_url, description, created_at, updated_at
FROM rooms
ORDER BY name ASC`

	queryUpdateRoom = `
UPDATE rooms
SET name = :name,
    type = :type,
    price = :price,
    status = :status,
    image_url = :image_url,
    description = :description,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateRoomStatus = `
UPDATE rooms
SET status = :status,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteRoom = `
DELETE FROM rooms
    WHERE id = :id`
)
