// Package queue publishes booking confirmations to RabbitMQ for downstream
// notification delivery.
package queue

// BookingConfirmedEvent is the payload pushed to the booking.confirmed queue
// after a booking is persisted. It carries enough for a notification worker
// to send the confirmation without reading the primary store.
type BookingConfirmedEvent struct {
	BookingID     string `json:"booking_id"`
	RoomID        string `json:"room_id"`
	RoomName      string `json:"room_name"`
	GuestName     string `json:"full_name"`
	GuestEmail    string `json:"email"`
	CheckIn       string `json:"checkin"`
	CheckOut      string `json:"checkout"`
	Guests        int    `json:"guests"`
	PricePerNight int    `json:"price_per_night"`
	Message       string `json:"message"`
	ConfirmedAt   string `json:"confirmed_at"`
}
