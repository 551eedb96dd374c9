package stores

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blissful-abodes/models"
)

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint")
}

type GormUserStore struct {
	DB *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{DB: db}
}

func (s *GormUserStore) Create(ctx context.Context, user *models.User) error {
	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing email: %w", err)
	}

	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

func (s *GormUserStore) UpdatePassword(ctx context.Context, id uint, hashed string) error {
	res := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password", hashed)
	if res.Error != nil {
		return fmt.Errorf("failed to update password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *GormUserStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

type GormRoomStore struct {
	DB *gorm.DB
}

func NewGormRoomStore(db *gorm.DB) *GormRoomStore {
	return &GormRoomStore{DB: db}
}

func (s *GormRoomStore) Seed(ctx context.Context, rooms []models.Room) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Room{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := s.DB.WithContext(ctx).Create(&rooms).Error; err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}
	return nil
}

func (s *GormRoomStore) List(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	q := s.DB.WithContext(ctx).Model(&models.Room{})

	if t := strings.TrimSpace(filter.Type); t != "" {
		q = q.Where("LOWER(type) = ?", strings.ToLower(t))
	}
	if raw := strings.TrimSpace(filter.MaxPrice); raw != "" {
		if max, err := strconv.Atoi(raw); err == nil {
			q = q.Where("price <= ?", max)
		}
	}
	if raw := strings.TrimSpace(filter.MinGuests); raw != "" {
		if min, err := strconv.Atoi(raw); err == nil {
			q = q.Where("max_guests >= ?", min)
		}
	}

	var rooms []models.Room
	if err := q.Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *GormRoomStore) Get(ctx context.Context, roomID string) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Where("room_id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to look up room %s: %w", roomID, err)
	}
	return &room, nil
}

func (s *GormRoomStore) UpdateStatus(ctx context.Context, roomID, status string) error {
	res := s.DB.WithContext(ctx).Model(&models.Room{}).
		Where("room_id = ?", roomID).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update room %s: %w", roomID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// SetStatusIfAvailable is a conditional write: the WHERE clause carries the
// expected status, so of two racing bookings only one sees RowsAffected == 1.
func (s *GormRoomStore) SetStatusIfAvailable(ctx context.Context, roomID string) error {
	res := s.DB.WithContext(ctx).Model(&models.Room{}).
		Where("room_id = ? AND status = ?", roomID, models.StatusAvailable).
		Update("status", models.StatusBooked)
	if res.Error != nil {
		return fmt.Errorf("failed to transition room %s: %w", roomID, res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := s.Get(ctx, roomID); err != nil {
			return err
		}
		return ErrRoomUnavailable
	}
	return nil
}

func (s *GormRoomStore) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	if err := s.DB.WithContext(ctx).Model(&models.Room{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

type GormBookingStore struct {
	DB *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{DB: db}
}

func (s *GormBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	if booking.BookingID == "" {
		booking.BookingID = uuid.NewString()
	}
	if err := s.DB.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (s *GormBookingStore) Get(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to look up booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

func (s *GormBookingStore) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *GormBookingStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Booking{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

func (s *GormBookingStore) RevenueSum(ctx context.Context) (int64, error) {
	var sum int64
	if err := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Select("COALESCE(SUM(price_per_night), 0)").
		Scan(&sum).Error; err != nil {
		return 0, fmt.Errorf("failed to sum booking revenue: %w", err)
	}
	return sum, nil
}
