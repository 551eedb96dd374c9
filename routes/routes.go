package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"blissful-abodes/controllers"
	"blissful-abodes/middleware"
	"blissful-abodes/models"
	"blissful-abodes/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers onto the public surface.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	adc *controllers.AdminController,
	sessions *services.SessionService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.LoadSession(sessions))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", ac.Home)
	r.GET("/register", ac.ShowRegister)
	r.POST("/register", ac.Register)
	r.GET("/login", ac.ShowLogin)
	r.POST("/login", ac.Login)
	r.GET("/logout", ac.Logout)
	r.GET("/dashboard", ac.Dashboard)

	r.GET("/rooms", rc.ListRooms)

	booking := r.Group("/", middleware.RequireAuth())
	{
		booking.GET("/book/:roomID", bc.ShowBookingForm)
		booking.POST("/book/:roomID", bc.CreateBooking)
		booking.GET("/booking-success/:bookingID", bc.BookingSuccess)
		booking.GET("/my-bookings", bc.MyBookings)
	}

	staff := r.Group("/staff", middleware.RequireRole(sessions, models.RoleStaff, "Staff access only"))
	{
		staff.GET("", rc.StaffPanel)
		staff.POST("", rc.UpdateRoomStatus)
	}

	admin := r.Group("/admin", middleware.RequireRole(sessions, models.RoleAdmin, "Admin access only"))
	{
		admin.GET("", adc.AdminPanel)
	}

	return r
}
