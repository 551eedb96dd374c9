package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blissful-abodes/middleware"
	"blissful-abodes/models"
	"blissful-abodes/services"
	"blissful-abodes/stores"
	"blissful-abodes/utils"
)

type BookingController struct {
	Bookings *services.BookingService
	Rooms    *services.RoomService
}

func NewBookingController(bookings *services.BookingService, rooms *services.RoomService) *BookingController {
	return &BookingController{Bookings: bookings, Rooms: rooms}
}

// ShowBookingForm (GET /book/:roomID) returns the room being booked. A room
// that is missing or not Available blocks the form.
func (bc *BookingController) ShowBookingForm(c *gin.Context) {
	roomID := c.Param("roomID")

	room, err := bc.Rooms.Get(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, stores.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load room")
		return
	}
	if room.Status != models.StatusAvailable {
		utils.JSONError(c, http.StatusConflict, "This room is not available right now")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"page": "book",
		"room": gin.H{
			"id":       room.RoomID,
			"name":     room.Name,
			"type":     room.Type,
			"price":    room.Price,
			"guests":   room.MaxGuests,
			"status":   room.Status,
			"features": room.FeatureList(),
		},
	})
}

// CreateBooking (POST /book/:roomID) runs the booking workflow and redirects
// to the confirmation view on success.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	roomID := c.Param("roomID")

	var details services.GuestDetails
	if err := c.ShouldBind(&details); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please fill all details")
		return
	}

	session := middleware.CurrentSession(c)
	if session == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	booking, err := bc.Bookings.AttemptBooking(c.Request.Context(), roomID, session.UserID, details)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "Room not found")
		case errors.Is(err, stores.ErrRoomUnavailable):
			utils.JSONError(c, http.StatusConflict, "This room is not available right now")
		case errors.Is(err, services.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, "Please fill all details")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/booking-success/%s", booking.BookingID))
}

// BookingSuccess (GET /booking-success/:bookingID) is the confirmation view.
func (bc *BookingController) BookingSuccess(c *gin.Context) {
	bookingID := c.Param("bookingID")

	booking, err := bc.Bookings.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, stores.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load booking")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"page": "booking_success", "booking": booking})
}

// MyBookings (GET /my-bookings) returns the caller's own bookings only.
func (bc *BookingController) MyBookings(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if session == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	bookings, err := bc.Bookings.ListByUser(c.Request.Context(), session.UserID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"page": "my_bookings", "bookings": bookings})
}
