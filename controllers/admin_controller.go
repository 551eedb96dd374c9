package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blissful-abodes/middleware"
	"blissful-abodes/services"
	"blissful-abodes/utils"
)

type AdminController struct {
	Admin    *services.AdminService
	Sessions *services.SessionService
}

func NewAdminController(admin *services.AdminService, sessions *services.SessionService) *AdminController {
	return &AdminController{Admin: admin, Sessions: sessions}
}

// AdminPanel (GET /admin) returns the aggregate dashboard: room totals by
// status, booking totals, the naive revenue estimate and the user count.
func (adc *AdminController) AdminPanel(c *gin.Context) {
	stats, err := adc.Admin.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to aggregate stats")
		return
	}

	var kind, message string
	if session := middleware.CurrentSession(c); session != nil {
		kind, message = adc.Sessions.PopFlash(c.Request.Context(), session.Token)
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"page":       "admin",
		"stats":      stats,
		"flash":      message,
		"flash_kind": kind,
	})
}
