package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blissful-abodes/models"
	"blissful-abodes/stores"
)

type captureNotifier struct {
	mu       sync.Mutex
	fail     error
	bookings []*models.Booking
}

func (n *captureNotifier) NotifyBookingConfirmed(_ context.Context, b *models.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail != nil {
		return n.fail
	}
	n.bookings = append(n.bookings, b)
	return nil
}

func newBookingFixture(t *testing.T) (*BookingService, *stores.MemoryRoomStore, *stores.MemoryBookingStore, *captureNotifier) {
	t.Helper()
	rooms := stores.NewMemoryRoomStore()
	require.NoError(t, rooms.Seed(context.Background(), []models.Room{
		{RoomID: "R101", Name: "Deluxe Sea View", Type: "Deluxe", Price: 2499, MaxGuests: 2, Status: models.StatusAvailable},
		{RoomID: "R102", Name: "Premium Suite", Type: "Suite", Price: 4999, MaxGuests: 4, Status: models.StatusAvailable},
		{RoomID: "R103", Name: "Standard Room", Type: "Standard", Price: 1599, MaxGuests: 2, Status: models.StatusBooked},
	}))
	bookings := stores.NewMemoryBookingStore()
	notifier := &captureNotifier{}
	return NewBookingService(rooms, bookings, notifier), rooms, bookings, notifier
}

func validDetails() GuestDetails {
	return GuestDetails{
		FullName: "A",
		Email:    "a@x.com",
		CheckIn:  "2025-01-01",
		CheckOut: "2025-01-03",
		Guests:   2,
	}
}

func TestAttemptBookingSuccess(t *testing.T) {
	svc, rooms, bookings, notifier := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.AttemptBooking(ctx, "R101", 7, validDetails())
	require.NoError(t, err)

	assert.Equal(t, "R101", booking.RoomID)
	assert.Equal(t, "Deluxe Sea View", booking.RoomName)
	assert.Equal(t, 2499, booking.PricePerNight)
	assert.EqualValues(t, 7, booking.UserID)
	assert.NotEmpty(t, booking.BookingID)

	room, err := rooms.Get(ctx, "R101")
	require.NoError(t, err)
	assert.Equal(t, models.StatusBooked, room.Status)

	count, err := bookings.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.Len(t, notifier.bookings, 1)
	assert.Equal(t, booking.BookingID, notifier.bookings[0].BookingID)
}

func TestAttemptBookingUnavailableRoomWritesNothing(t *testing.T) {
	svc, rooms, bookings, _ := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.AttemptBooking(ctx, "R103", 7, validDetails())
	assert.ErrorIs(t, err, stores.ErrRoomUnavailable)

	count, cErr := bookings.Count(ctx)
	require.NoError(t, cErr)
	assert.Zero(t, count, "failed attempt must not append to the ledger")

	room, gErr := rooms.Get(ctx, "R103")
	require.NoError(t, gErr)
	assert.Equal(t, models.StatusBooked, room.Status)
}

func TestAttemptBookingUnknownRoom(t *testing.T) {
	svc, _, bookings, _ := newBookingFixture(t)

	_, err := svc.AttemptBooking(context.Background(), "R999", 7, validDetails())
	assert.ErrorIs(t, err, stores.ErrRoomNotFound)

	count, cErr := bookings.Count(context.Background())
	require.NoError(t, cErr)
	assert.Zero(t, count)
}

func TestAttemptBookingValidatesGuestDetails(t *testing.T) {
	svc, rooms, bookings, _ := newBookingFixture(t)
	ctx := context.Background()

	cases := []GuestDetails{
		{Email: "a@x.com", CheckIn: "2025-01-01", CheckOut: "2025-01-03", Guests: 2},
		{FullName: "A", CheckIn: "2025-01-01", CheckOut: "2025-01-03", Guests: 2},
		{FullName: "A", Email: "a@x.com", CheckOut: "2025-01-03", Guests: 2},
		{FullName: "A", Email: "a@x.com", CheckIn: "2025-01-01", Guests: 2},
		{FullName: "A", Email: "a@x.com", CheckIn: "2025-01-01", CheckOut: "2025-01-03"},
	}
	for _, details := range cases {
		_, err := svc.AttemptBooking(ctx, "R101", 7, details)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	// Nothing was written and the room is still bookable.
	count, err := bookings.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	room, err := rooms.Get(ctx, "R101")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, room.Status)
}

func TestAttemptBookingPriceSnapshotIsFixed(t *testing.T) {
	svc, rooms, _, _ := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.AttemptBooking(ctx, "R101", 7, validDetails())
	require.NoError(t, err)
	require.Equal(t, 2499, booking.PricePerNight)

	// Re-open the room and change nothing about the stored booking.
	require.NoError(t, rooms.UpdateStatus(ctx, "R101", models.StatusAvailable))

	stored, err := svc.GetBooking(ctx, booking.BookingID)
	require.NoError(t, err)
	assert.Equal(t, 2499, stored.PricePerNight)
}

func TestAttemptBookingSecondAttemptFails(t *testing.T) {
	svc, _, bookings, _ := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.AttemptBooking(ctx, "R101", 7, validDetails())
	require.NoError(t, err)

	// A different user hitting the same room fails regardless of who booked.
	_, err = svc.AttemptBooking(ctx, "R101", 8, validDetails())
	assert.ErrorIs(t, err, stores.ErrRoomUnavailable)

	count, cErr := bookings.Count(ctx)
	require.NoError(t, cErr)
	assert.EqualValues(t, 1, count)
}

func TestAttemptBookingConcurrentSingleWinner(t *testing.T) {
	svc, _, bookings, _ := newBookingFixture(t)
	ctx := context.Background()

	const attempts = 10
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.AttemptBooking(ctx, "R102", uint(i+1), validDetails())
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, stores.ErrRoomUnavailable)
		}
	}
	assert.Equal(t, 1, wins, "a room must never be booked twice concurrently")

	count, err := bookings.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAttemptBookingSurvivesNotifierFailure(t *testing.T) {
	svc, _, bookings, notifier := newBookingFixture(t)
	notifier.fail = errors.New("broker down")

	booking, err := svc.AttemptBooking(context.Background(), "R101", 7, validDetails())
	require.NoError(t, err, "notification failure must not fail the booking")

	stored, err := bookings.Get(context.Background(), booking.BookingID)
	require.NoError(t, err)
	assert.Equal(t, booking.BookingID, stored.BookingID)
}

func TestBookingIDsUniqueAcrossLedger(t *testing.T) {
	svc, rooms, _, _ := newBookingFixture(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		booking, err := svc.AttemptBooking(ctx, "R101", 1, validDetails())
		require.NoError(t, err)
		assert.False(t, seen[booking.BookingID])
		seen[booking.BookingID] = true

		// Staff reopens the room between bookings.
		require.NoError(t, rooms.UpdateStatus(ctx, "R101", models.StatusAvailable))
	}
}

func TestConfirmationMessageMentionsBooking(t *testing.T) {
	booking := &models.Booking{
		BookingID: "BKG001",
		RoomName:  "Deluxe Sea View",
		GuestName: "A",
		CheckIn:   "2025-01-01",
		CheckOut:  "2025-01-03",
	}
	msg := ConfirmationMessage(booking)
	assert.Contains(t, msg, "Hello A")
	assert.Contains(t, msg, "Room: Deluxe Sea View")
	assert.Contains(t, msg, "Booking ID: BKG001")
}
