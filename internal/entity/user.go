package entity

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin        Role = "Admin"
	RoleReceptionist Role = "Receptionist"
	RoleGuest        Role = "Guest"
)

// ParseRole maps a raw role string to the closed enumeration. Unknown
// roles are rejected instead of silently falling back to an empty set.
func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin":
		return RoleAdmin, nil
	case "receptionist":
		return RoleReceptionist, nil
	case "guest":
		return RoleGuest, nil
	default:
		return "", fmt.Errorf("unknown role: %q", raw)
	}
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID        string    `db:"id"`
	FullName  string    `db:"full_name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID       string
	FullName string
	Email    string
	Role     Role
}
