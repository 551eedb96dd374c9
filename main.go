package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"blissful-abodes/config"
	"blissful-abodes/controllers"
	"blissful-abodes/queue"
	"blissful-abodes/routes"
	"blissful-abodes/services"
	"blissful-abodes/stores"
	"blissful-abodes/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// Pick the persistence backend: in-process stores by default, MySQL when
	// STORE_BACKEND=mysql.
	var (
		userStore    stores.UserStore
		roomStore    stores.RoomStore
		bookingStore stores.BookingStore
	)
	switch backend := utils.EnvOrDefault("STORE_BACKEND", "memory"); backend {
	case "mysql":
		if err := config.ConnectDatabase(); err != nil {
			log.Fatalf("Database connect failed: %v", err)
		}
		userStore = stores.NewGormUserStore(config.DB)
		roomStore = stores.NewGormRoomStore(config.DB)
		bookingStore = stores.NewGormBookingStore(config.DB)
		log.Println("Using MySQL stores")
	case "memory":
		userStore = stores.NewMemoryUserStore()
		roomStore = stores.NewMemoryRoomStore()
		bookingStore = stores.NewMemoryBookingStore()
		log.Println("Using in-memory stores (state is lost on restart)")
	default:
		log.Fatalf("Unknown STORE_BACKEND %q (want memory or mysql)", backend)
	}

	// Sessions live in Redis when one is reachable, in process otherwise.
	var sessionStore stores.SessionStore
	if client := config.NewRedisClient(); client != nil {
		sessionStore = stores.NewRedisSessionStore(client)
		log.Println("Using Redis session store")
	} else {
		sessionStore = stores.NewMemorySessionStore()
		log.Println("Using in-memory session store")
	}

	// Confirmation dispatch goes through RabbitMQ when configured.
	var notifier services.Notifier = services.LogNotifier{}
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		notifier = services.NewQueueNotifier(queue.NewPublisher(url))
		log.Println("Booking confirmations will be published to RabbitMQ")
	}

	ttlHours, err := strconv.Atoi(utils.EnvOrDefault("SESSION_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}

	// Initialize services
	identityService := services.NewIdentityService(userStore)
	sessionService := services.NewSessionService(sessionStore, time.Duration(ttlHours)*time.Hour)
	roomService := services.NewRoomService(roomStore)
	bookingService := services.NewBookingService(roomStore, bookingStore, notifier)
	adminService := services.NewAdminService(roomStore, bookingStore, userStore)

	config.SeedData(context.Background(), roomStore, identityService)

	// Initialize controllers
	authController := controllers.NewAuthController(identityService, sessionService)
	roomController := controllers.NewRoomController(roomService, sessionService)
	bookingController := controllers.NewBookingController(bookingService, roomService)
	adminController := controllers.NewAdminController(adminService, sessionService)

	router := routes.SetupRouter(authController, roomController, bookingController, adminController, sessionService)

	port := utils.EnvOrDefault("PORT", "8080")
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
