package stores

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"blissful-abodes/models"
)

// The memory variant keeps everything in process. Each store guards its slice
// or map with its own mutex; insertion order is the iteration order.

type MemoryUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  []models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{nextID: 1}
}

func (s *MemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.nextID++
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryUserStore) UpdatePassword(_ context.Context, id uint, hashed string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Password = hashed
			return nil
		}
	}
	return ErrUserNotFound
}

func (s *MemoryUserStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

type MemoryRoomStore struct {
	mu    sync.Mutex
	rooms []models.Room
}

func NewMemoryRoomStore() *MemoryRoomStore {
	return &MemoryRoomStore{}
}

func (s *MemoryRoomStore) Seed(_ context.Context, rooms []models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.rooms) > 0 {
		return nil
	}
	s.rooms = append(s.rooms, rooms...)
	return nil
}

// matchesFilter applies the /rooms query semantics: type is a case-insensitive
// exact match, price and guests are inclusive bounds ignored when the raw
// value does not parse as an integer.
func matchesFilter(room *models.Room, filter RoomFilter) bool {
	if t := strings.TrimSpace(filter.Type); t != "" && !strings.EqualFold(room.Type, t) {
		return false
	}
	if raw := strings.TrimSpace(filter.MaxPrice); raw != "" {
		if max, err := strconv.Atoi(raw); err == nil && room.Price > max {
			return false
		}
	}
	if raw := strings.TrimSpace(filter.MinGuests); raw != "" {
		if min, err := strconv.Atoi(raw); err == nil && room.MaxGuests < min {
			return false
		}
	}
	return true
}

func (s *MemoryRoomStore) List(_ context.Context, filter RoomFilter) ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Room, 0, len(s.rooms))
	for i := range s.rooms {
		if matchesFilter(&s.rooms[i], filter) {
			out = append(out, s.rooms[i])
		}
	}
	return out, nil
}

func (s *MemoryRoomStore) Get(_ context.Context, roomID string) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].RoomID == roomID {
			r := s.rooms[i]
			return &r, nil
		}
	}
	return nil, ErrRoomNotFound
}

func (s *MemoryRoomStore) UpdateStatus(_ context.Context, roomID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].RoomID == roomID {
			s.rooms[i].Status = status
			return nil
		}
	}
	return ErrRoomNotFound
}

func (s *MemoryRoomStore) SetStatusIfAvailable(_ context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].RoomID == roomID {
			if s.rooms[i].Status != models.StatusAvailable {
				return ErrRoomUnavailable
			}
			s.rooms[i].Status = models.StatusBooked
			return nil
		}
	}
	return ErrRoomNotFound
}

func (s *MemoryRoomStore) CountByStatus(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int64)
	for i := range s.rooms {
		counts[s.rooms[i].Status]++
	}
	return counts, nil
}

type MemoryBookingStore struct {
	mu       sync.Mutex
	seq      int
	bookings []models.Booking
}

func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{}
}

func (s *MemoryBookingStore) Create(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if booking.BookingID == "" {
		s.seq++
		booking.BookingID = fmt.Sprintf("BKG%03d", s.seq)
	}
	booking.ID = uint(len(s.bookings) + 1)
	booking.CreatedAt = time.Now()
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (s *MemoryBookingStore) Get(_ context.Context, bookingID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].BookingID == bookingID {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (s *MemoryBookingStore) ListByUser(_ context.Context, userID uint) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Booking, 0)
	for i := range s.bookings {
		if s.bookings[i].UserID == userID {
			out = append(out, s.bookings[i])
		}
	}
	return out, nil
}

func (s *MemoryBookingStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.bookings)), nil
}

func (s *MemoryBookingStore) RevenueSum(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum int64
	for i := range s.bookings {
		sum += int64(s.bookings[i].PricePerNight)
	}
	return sum, nil
}

type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.Session)}
}

func (s *MemorySessionStore) Put(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = *session
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.Expired(time.Now()) {
		delete(s.sessions, token)
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
