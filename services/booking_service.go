package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"blissful-abodes/models"
	"blissful-abodes/stores"
)

// GuestDetails is the booking form payload. Bind tags accept both the HTML
// form field names and JSON bodies.
type GuestDetails struct {
	FullName string `form:"full_name" json:"full_name"`
	Email    string `form:"email" json:"email"`
	CheckIn  string `form:"checkin" json:"checkin"`
	CheckOut string `form:"checkout" json:"checkout"`
	Guests   int    `form:"guests" json:"guests"`
}

// Validate checks completeness, not plausibility: the form only requires
// that every field be present.
func (d *GuestDetails) Validate() error {
	if strings.TrimSpace(d.FullName) == "" ||
		strings.TrimSpace(d.Email) == "" ||
		strings.TrimSpace(d.CheckIn) == "" ||
		strings.TrimSpace(d.CheckOut) == "" ||
		d.Guests <= 0 {
		return ErrInvalidInput
	}
	return nil
}

// BookingService orchestrates the booking workflow: room lookup, availability
// gate, ledger append, confirmation dispatch.
type BookingService struct {
	Rooms    stores.RoomStore
	Bookings stores.BookingStore
	Notifier Notifier
}

func NewBookingService(rooms stores.RoomStore, bookings stores.BookingStore, notifier Notifier) *BookingService {
	return &BookingService{Rooms: rooms, Bookings: bookings, Notifier: notifier}
}

// AttemptBooking runs the whole workflow for one room. The status transition
// happens through the store's conditional write before the ledger append, so
// of two concurrent attempts on the same room exactly one creates a booking;
// the loser fails with stores.ErrRoomUnavailable and writes nothing.
func (s *BookingService) AttemptBooking(ctx context.Context, roomID string, userID uint, details GuestDetails) (*models.Booking, error) {
	room, err := s.Rooms.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.Status != models.StatusAvailable {
		return nil, stores.ErrRoomUnavailable
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	if err := s.Rooms.SetStatusIfAvailable(ctx, roomID); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		RoomID:        room.RoomID,
		RoomName:      room.Name,
		UserID:        userID,
		GuestName:     strings.TrimSpace(details.FullName),
		GuestEmail:    strings.TrimSpace(details.Email),
		CheckIn:       details.CheckIn,
		CheckOut:      details.CheckOut,
		Guests:        details.Guests,
		PricePerNight: room.Price,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		// The room is already marked Booked at this point; there is no
		// compensating transaction, the ledger write is the hard failure.
		return nil, fmt.Errorf("failed to append booking: %w", err)
	}

	// Best-effort confirmation. A notifier failure never fails the booking.
	if s.Notifier != nil {
		if nErr := s.Notifier.NotifyBookingConfirmed(ctx, booking); nErr != nil {
			log.Printf("warning: booking %s confirmed but notification failed: %v", booking.BookingID, nErr)
		}
	}

	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.Bookings.Get(ctx, bookingID)
}

func (s *BookingService) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	return s.Bookings.ListByUser(ctx, userID)
}

// ConfirmationMessage renders the text sent with a booking confirmation.
func ConfirmationMessage(b *models.Booking) string {
	return fmt.Sprintf(`Hello %s,

Your booking is confirmed!

Room: %s
Check-in: %s
Check-out: %s
Booking ID: %s

Thank you,
Blissful Abodes
`, b.GuestName, b.RoomName, b.CheckIn, b.CheckOut, b.BookingID)
}
