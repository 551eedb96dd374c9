package services

import (
	"context"
	"log"
	"time"

	"blissful-abodes/models"
	"blissful-abodes/queue"
)

// Notifier delivers booking confirmations. Delivery is fire-and-forget: the
// workflow logs a failed notification and keeps the booking.
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking *models.Booking) error
}

// LogNotifier writes the confirmation to the process log. It is the default
// when no broker is configured.
type LogNotifier struct{}

func (LogNotifier) NotifyBookingConfirmed(_ context.Context, booking *models.Booking) error {
	log.Printf("booking %s confirmed for %s <%s>", booking.BookingID, booking.GuestName, booking.GuestEmail)
	return nil
}

// QueueNotifier publishes the confirmation to RabbitMQ.
type QueueNotifier struct {
	Publisher *queue.Publisher
}

func NewQueueNotifier(publisher *queue.Publisher) *QueueNotifier {
	return &QueueNotifier{Publisher: publisher}
}

func (n *QueueNotifier) NotifyBookingConfirmed(ctx context.Context, booking *models.Booking) error {
	event := queue.BookingConfirmedEvent{
		BookingID:     booking.BookingID,
		RoomID:        booking.RoomID,
		RoomName:      booking.RoomName,
		GuestName:     booking.GuestName,
		GuestEmail:    booking.GuestEmail,
		CheckIn:       booking.CheckIn,
		CheckOut:      booking.CheckOut,
		Guests:        booking.Guests,
		PricePerNight: booking.PricePerNight,
		Message:       ConfirmationMessage(booking),
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	return n.Publisher.PublishBookingConfirmed(ctx, event)
}
