package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, full_name, email, password, role, created_at, updated_at)
VALUES (:id, :full_name, :email, :password, :role, :created_at, :updated_at)`

	queryGetByID = `
SELECT id, full_name, email, password, role, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, full_name, email, password, role, created_at, updated_at
FROM users
    WHERE email = :email`
)
