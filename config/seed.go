package config

import (
	"context"
	"errors"
	"log"

	"blissful-abodes/models"
	"blissful-abodes/services"
	"blissful-abodes/stores"
	"blissful-abodes/utils"
)

// DefaultRooms is the seed catalog. R103 starts out Booked.
func DefaultRooms() []models.Room {
	rooms := []models.Room{
		{RoomID: "R101", Name: "Deluxe Sea View", Type: "Deluxe", Price: 2499, MaxGuests: 2, Status: models.StatusAvailable},
		{RoomID: "R102", Name: "Premium Suite", Type: "Suite", Price: 4999, MaxGuests: 4, Status: models.StatusAvailable},
		{RoomID: "R103", Name: "Standard Room", Type: "Standard", Price: 1599, MaxGuests: 2, Status: models.StatusBooked},
		{RoomID: "R104", Name: "Family Comfort Room", Type: "Family", Price: 3299, MaxGuests: 5, Status: models.StatusAvailable},
	}

	features := [][]string{
		{"WiFi", "AC", "Sea View", "Breakfast"},
		{"WiFi", "AC", "Balcony", "Bathtub"},
		{"WiFi", "Fan", "TV"},
		{"WiFi", "AC", "Extra Bed", "Mini Fridge"},
	}
	for i := range rooms {
		rooms[i].SetFeatures(features[i])
	}
	return rooms
}

// SeedData fills an empty catalog and ensures the default staff and admin
// accounts exist. Passwords come from the environment in real deployments.
func SeedData(ctx context.Context, rooms stores.RoomStore, identity *services.IdentityService) {
	if err := rooms.Seed(ctx, DefaultRooms()); err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
	} else {
		log.Println("Room catalog ensured")
	}

	accounts := []struct {
		name, email, passEnv, passDef, role string
	}{
		{"Admin User", "admin@blissful.local", "ADMIN_PASSWORD", "admin123", models.RoleAdmin},
		{"Front Desk", "staff@blissful.local", "STAFF_PASSWORD", "staff123", models.RoleStaff},
	}
	for _, a := range accounts {
		_, err := identity.Register(ctx, a.name, a.email, utils.EnvOrDefault(a.passEnv, a.passDef), a.role)
		if err != nil && !errors.Is(err, stores.ErrDuplicateEmail) {
			log.Printf("warning: failed to seed account %s: %v", a.email, err)
		}
	}
	log.Println("Default accounts ensured")
}
