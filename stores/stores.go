// Package stores defines the persistence contracts the services are written
// against, with a mutex-guarded in-memory implementation and a GORM/MySQL
// implementation behind the same interfaces.
package stores

import (
	"context"
	"errors"

	"blissful-abodes/models"
)

var (
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrRoomUnavailable = errors.New("room_unavailable")
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrDuplicateEmail  = errors.New("email_already_registered")
	ErrUserNotFound    = errors.New("user_not_found")
	ErrSessionNotFound = errors.New("session_not_found")
)

// RoomFilter carries the raw query values from /rooms. MaxPrice and MinGuests
// stay strings on purpose: non-numeric values are ignored, not rejected.
type RoomFilter struct {
	Type      string
	MaxPrice  string
	MinGuests string
}

type UserStore interface {
	// Create fails with ErrDuplicateEmail when another user already holds the
	// email (case-sensitive exact match).
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdatePassword rewrites the stored credential, used to upgrade legacy
	// plaintext rows to bcrypt after a successful login.
	UpdatePassword(ctx context.Context, id uint, hashed string) error
	Count(ctx context.Context) (int64, error)
}

type RoomStore interface {
	// Seed inserts the given rooms only when the catalog is empty.
	Seed(ctx context.Context, rooms []models.Room) error
	List(ctx context.Context, filter RoomFilter) ([]models.Room, error)
	Get(ctx context.Context, roomID string) (*models.Room, error)
	// UpdateStatus is the staff override: any status string is accepted.
	UpdateStatus(ctx context.Context, roomID, status string) error
	// SetStatusIfAvailable transitions Available -> Booked as a single
	// conditional write. It fails with ErrRoomUnavailable when the room is in
	// any other status, so two concurrent bookings cannot both win.
	SetStatusIfAvailable(ctx context.Context, roomID string) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type BookingStore interface {
	// Create appends to the ledger and assigns BookingID when it is empty:
	// a sequential BKG counter in the memory variant, a UUID in MySQL.
	Create(ctx context.Context, booking *models.Booking) error
	Get(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Booking, error)
	Count(ctx context.Context) (int64, error)
	// RevenueSum is the admin panel's naive estimate: the sum of the
	// per-night price snapshots across all bookings.
	RevenueSum(ctx context.Context) (int64, error)
}

type SessionStore interface {
	Put(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}
