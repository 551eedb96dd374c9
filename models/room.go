package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

const (
	StatusAvailable = "Available"
	StatusBooked    = "Booked"
)

// Room is a catalog entry. RoomID is the stable public identifier (R101...),
// kept separate from the numeric primary key so the memory and MySQL variants
// agree on what callers address rooms by.
type Room struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	RoomID string `gorm:"column:room_id;uniqueIndex;size:50" json:"id"`
	Name   string `gorm:"size:255" json:"name"`
	Type   string `gorm:"size:100" json:"type"`

	// Nightly price and maximum occupancy.
	Price     int `json:"price"`
	MaxGuests int `gorm:"column:max_guests" json:"guests"`

	// Status is free text: the workflow only ever writes "Booked", but the
	// staff panel may set anything ("Cleaning", "Maintenance", ...).
	Status string `gorm:"size:64" json:"status"`

	Features datatypes.JSON `gorm:"column:features" json:"features"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// FeatureList decodes the JSON features column. A malformed or empty column
// yields an empty list rather than an error.
func (r *Room) FeatureList() []string {
	if len(r.Features) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(r.Features, &out); err != nil {
		return []string{}
	}
	return out
}

func (r *Room) SetFeatures(features []string) {
	raw, err := json.Marshal(features)
	if err != nil {
		return
	}
	r.Features = datatypes.JSON(raw)
}
