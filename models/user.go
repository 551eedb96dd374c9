package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles recognised by the session layer. There is no hierarchy between them;
// an endpoint gated on one role rejects every other role.
const (
	RoleGuest = "guest"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

func ValidRole(role string) bool {
	return role == RoleGuest || role == RoleStaff || role == RoleAdmin
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash (legacy rows may hold plaintext)
	Role     string `gorm:"size:32" json:"role"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
