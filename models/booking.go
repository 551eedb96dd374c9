package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking is an append-only ledger entry. PricePerNight is snapshotted from
// the room at creation time and never re-read from the catalog. Check-in and
// check-out are kept as the yyyy-mm-dd strings the form submitted.
type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	BookingID string `gorm:"column:booking_id;uniqueIndex;size:64" json:"booking_id"`

	RoomID   string `gorm:"column:room_id;index;size:50" json:"room_id"`
	RoomName string `gorm:"size:255" json:"room_name"`

	UserID     uint   `gorm:"index" json:"user_id"`
	GuestName  string `gorm:"size:255" json:"full_name"`
	GuestEmail string `gorm:"size:255" json:"email"`

	CheckIn  string `gorm:"size:32" json:"checkin"`
	CheckOut string `gorm:"size:32" json:"checkout"`
	Guests   int    `json:"guests"`

	PricePerNight int `gorm:"column:price_per_night" json:"price_per_night"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
