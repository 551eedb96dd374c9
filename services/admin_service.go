package services

import (
	"context"
	"fmt"

	"blissful-abodes/models"
	"blissful-abodes/stores"
)

type AdminStats struct {
	TotalRooms      int64            `json:"total_rooms"`
	AvailableRooms  int64            `json:"available_rooms"`
	BookedRooms     int64            `json:"booked_rooms"`
	RoomsByStatus   map[string]int64 `json:"rooms_by_status"`
	TotalBookings   int64            `json:"total_bookings"`
	RevenueEstimate int64            `json:"revenue_estimate"`
	TotalUsers      int64            `json:"total_users"`
}

// AdminService aggregates the counts shown on the admin panel. Revenue is a
// naive estimate: the sum of per-night price snapshots across all bookings.
type AdminService struct {
	Rooms    stores.RoomStore
	Bookings stores.BookingStore
	Users    stores.UserStore
}

func NewAdminService(rooms stores.RoomStore, bookings stores.BookingStore, users stores.UserStore) *AdminService {
	return &AdminService{Rooms: rooms, Bookings: bookings, Users: users}
}

func (s *AdminService) Stats(ctx context.Context) (*AdminStats, error) {
	byStatus, err := s.Rooms.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rooms: %w", err)
	}

	stats := &AdminStats{RoomsByStatus: byStatus}
	for status, n := range byStatus {
		stats.TotalRooms += n
		switch status {
		case models.StatusAvailable:
			stats.AvailableRooms = n
		case models.StatusBooked:
			stats.BookedRooms = n
		}
	}

	if stats.TotalBookings, err = s.Bookings.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	if stats.RevenueEstimate, err = s.Bookings.RevenueSum(ctx); err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	if stats.TotalUsers, err = s.Users.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	return stats, nil
}
