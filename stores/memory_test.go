package stores

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blissful-abodes/models"
)

func seedCatalog(t *testing.T) *MemoryRoomStore {
	t.Helper()
	s := NewMemoryRoomStore()
	rooms := []models.Room{
		{RoomID: "R101", Name: "Deluxe Sea View", Type: "Deluxe", Price: 2499, MaxGuests: 2, Status: models.StatusAvailable},
		{RoomID: "R102", Name: "Premium Suite", Type: "Suite", Price: 4999, MaxGuests: 4, Status: models.StatusAvailable},
		{RoomID: "R103", Name: "Standard Room", Type: "Standard", Price: 1599, MaxGuests: 2, Status: models.StatusBooked},
		{RoomID: "R104", Name: "Family Comfort Room", Type: "Family", Price: 3299, MaxGuests: 5, Status: models.StatusAvailable},
	}
	require.NoError(t, s.Seed(context.Background(), rooms))
	return s
}

func roomIDs(rooms []models.Room) []string {
	ids := make([]string, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.RoomID)
	}
	return ids
}

func TestRoomListNoFilterKeepsInsertionOrder(t *testing.T) {
	s := seedCatalog(t)

	rooms, err := s.List(context.Background(), RoomFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"R101", "R102", "R103", "R104"}, roomIDs(rooms))
}

func TestRoomListFilters(t *testing.T) {
	s := seedCatalog(t)
	ctx := context.Background()

	rooms, err := s.List(ctx, RoomFilter{MaxPrice: "2000"})
	require.NoError(t, err)
	assert.Equal(t, []string{"R103"}, roomIDs(rooms))

	rooms, err = s.List(ctx, RoomFilter{Type: "deluxe"})
	require.NoError(t, err)
	assert.Equal(t, []string{"R101"}, roomIDs(rooms))

	rooms, err = s.List(ctx, RoomFilter{MinGuests: "4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"R102", "R104"}, roomIDs(rooms))

	// Non-numeric bounds are ignored, not rejected.
	rooms, err = s.List(ctx, RoomFilter{MaxPrice: "cheap", MinGuests: "many"})
	require.NoError(t, err)
	assert.Len(t, rooms, 4)

	// Filters combine with AND.
	rooms, err = s.List(ctx, RoomFilter{Type: "Suite", MaxPrice: "2000"})
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestRoomSeedIsIdempotent(t *testing.T) {
	s := seedCatalog(t)
	require.NoError(t, s.Seed(context.Background(), []models.Room{{RoomID: "R999"}}))

	rooms, err := s.List(context.Background(), RoomFilter{})
	require.NoError(t, err)
	assert.Len(t, rooms, 4)
}

func TestSetStatusIfAvailable(t *testing.T) {
	s := seedCatalog(t)
	ctx := context.Background()

	require.NoError(t, s.SetStatusIfAvailable(ctx, "R101"))
	room, err := s.Get(ctx, "R101")
	require.NoError(t, err)
	assert.Equal(t, models.StatusBooked, room.Status)

	assert.ErrorIs(t, s.SetStatusIfAvailable(ctx, "R101"), ErrRoomUnavailable)
	assert.ErrorIs(t, s.SetStatusIfAvailable(ctx, "R103"), ErrRoomUnavailable)
	assert.ErrorIs(t, s.SetStatusIfAvailable(ctx, "R999"), ErrRoomNotFound)
}

func TestSetStatusIfAvailableConcurrent(t *testing.T) {
	s := seedCatalog(t)
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.SetStatusIfAvailable(ctx, "R102")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrRoomUnavailable)
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent attempt may win the transition")
}

func TestStaffStatusOverrideAcceptsFreeText(t *testing.T) {
	s := seedCatalog(t)
	ctx := context.Background()

	require.NoError(t, s.UpdateStatus(ctx, "R103", "Deep Cleaning"))
	room, err := s.Get(ctx, "R103")
	require.NoError(t, err)
	assert.Equal(t, "Deep Cleaning", room.Status)

	assert.ErrorIs(t, s.UpdateStatus(ctx, "R999", "Booked"), ErrRoomNotFound)
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	s := NewMemoryUserStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.User{Name: "A", Email: "a@x.com", Role: models.RoleGuest}))
	err := s.Create(ctx, &models.User{Name: "B", Email: "a@x.com", Role: models.RoleGuest})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The match is case-sensitive: a different casing is a different email.
	require.NoError(t, s.Create(ctx, &models.User{Name: "C", Email: "A@x.com", Role: models.RoleGuest}))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestBookingIDsAreSequentialAndUnique(t *testing.T) {
	s := NewMemoryBookingStore()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		b := &models.Booking{RoomID: "R101", UserID: 1, PricePerNight: 2499}
		require.NoError(t, s.Create(ctx, b))
		assert.False(t, seen[b.BookingID], "booking id %s reused", b.BookingID)
		seen[b.BookingID] = true
	}
	assert.True(t, seen["BKG001"])
	assert.True(t, seen["BKG005"])

	sum, err := s.RevenueSum(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5*2499, sum)
}

func TestBookingListByUserScopesToOwner(t *testing.T) {
	s := NewMemoryBookingStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.Booking{RoomID: "R101", UserID: 1}))
	require.NoError(t, s.Create(ctx, &models.Booking{RoomID: "R102", UserID: 2}))
	require.NoError(t, s.Create(ctx, &models.Booking{RoomID: "R104", UserID: 1}))

	mine, err := s.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, b := range mine {
		assert.EqualValues(t, 1, b.UserID)
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	live := &models.Session{Token: "live", UserID: 1, Role: models.RoleGuest, ExpiresAt: time.Now().Add(time.Hour)}
	stale := &models.Session{Token: "stale", UserID: 2, Role: models.RoleGuest, ExpiresAt: time.Now().Add(-time.Minute)}
	require.NoError(t, s.Put(ctx, live))
	require.NoError(t, s.Put(ctx, stale))

	got, err := s.Get(ctx, "live")
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.UserID)

	_, err = s.Get(ctx, "stale")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, s.Delete(ctx, "live"))
	_, err = s.Get(ctx, "live")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
