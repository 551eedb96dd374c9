package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blissful-abodes/middleware"
	"blissful-abodes/services"
	"blissful-abodes/stores"
	"blissful-abodes/utils"
)

type roomStatusPayload struct {
	RoomID string `form:"room_id" json:"room_id"`
	Status string `form:"status" json:"status"`
}

type RoomController struct {
	Rooms    *services.RoomService
	Sessions *services.SessionService
}

func NewRoomController(rooms *services.RoomService, sessions *services.SessionService) *RoomController {
	return &RoomController{Rooms: rooms, Sessions: sessions}
}

// ListRooms (GET /rooms?type=&max_price=&guests=) applies the optional
// filters and returns the catalog in insertion order.
func (rc *RoomController) ListRooms(c *gin.Context) {
	filter := stores.RoomFilter{
		Type:      c.Query("type"),
		MaxPrice:  c.Query("max_price"),
		MinGuests: c.Query("guests"),
	}

	rooms, err := rc.Rooms.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list rooms")
		return
	}

	views := make([]gin.H, 0, len(rooms))
	for i := range rooms {
		r := &rooms[i]
		views = append(views, gin.H{
			"id":       r.RoomID,
			"name":     r.Name,
			"type":     r.Type,
			"price":    r.Price,
			"guests":   r.MaxGuests,
			"status":   r.Status,
			"features": r.FeatureList(),
		})
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"rooms":           views,
		"selected_type":   filter.Type,
		"selected_price":  filter.MaxPrice,
		"selected_guests": filter.MinGuests,
	})
}

// StaffPanel (GET /staff) lists the full catalog for status overrides.
func (rc *RoomController) StaffPanel(c *gin.Context) {
	rooms, err := rc.Rooms.List(c.Request.Context(), stores.RoomFilter{})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list rooms")
		return
	}

	var kind, message string
	if session := middleware.CurrentSession(c); session != nil {
		kind, message = rc.Sessions.PopFlash(c.Request.Context(), session.Token)
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"page":       "staff",
		"rooms":      rooms,
		"flash":      message,
		"flash_kind": kind,
	})
}

// UpdateRoomStatus (POST /staff) is the staff override: any status string is
// written, then the panel reloads with a flash describing the outcome.
func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	var payload roomStatusPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	session := middleware.CurrentSession(c)
	err := rc.Rooms.UpdateStatus(c.Request.Context(), payload.RoomID, payload.Status)
	switch {
	case err == nil:
		if session != nil {
			_ = rc.Sessions.Flash(c.Request.Context(), session.Token, "success",
				fmt.Sprintf("Room %s status updated to %s", payload.RoomID, payload.Status))
		}
	case errors.Is(err, stores.ErrRoomNotFound):
		if session != nil {
			_ = rc.Sessions.Flash(c.Request.Context(), session.Token, "error", "Room not found")
		}
	case errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, "Room id and status are required")
		return
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room")
		return
	}

	c.Redirect(http.StatusSeeOther, "/staff")
}
