package services

import (
	"context"
	"strings"

	"blissful-abodes/models"
	"blissful-abodes/stores"
)

type RoomService struct {
	Rooms stores.RoomStore
}

func NewRoomService(rooms stores.RoomStore) *RoomService {
	return &RoomService{Rooms: rooms}
}

func (s *RoomService) List(ctx context.Context, filter stores.RoomFilter) ([]models.Room, error) {
	return s.Rooms.List(ctx, filter)
}

func (s *RoomService) Get(ctx context.Context, roomID string) (*models.Room, error) {
	return s.Rooms.Get(ctx, roomID)
}

// UpdateStatus is the staff override. Any non-empty status string is allowed,
// including transitioning a Booked room back to Available.
func (s *RoomService) UpdateStatus(ctx context.Context, roomID, status string) error {
	roomID = strings.TrimSpace(roomID)
	status = strings.TrimSpace(status)
	if roomID == "" || status == "" {
		return ErrInvalidInput
	}
	return s.Rooms.UpdateStatus(ctx, roomID, status)
}
