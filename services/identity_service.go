package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"blissful-abodes/models"
	"blissful-abodes/stores"
	"blissful-abodes/utils"
)

// IdentityService handles registration and login against the user store.
// Credentials are bcrypt-hashed on the way in; rows that still hold plaintext
// (pre-hashing data) authenticate by direct comparison and are upgraded to a
// hash on their next successful login.
type IdentityService struct {
	Users stores.UserStore
}

func NewIdentityService(users stores.UserStore) *IdentityService {
	return &IdentityService{Users: users}
}

func (s *IdentityService) Register(ctx context.Context, name, email, password, role string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	role = strings.TrimSpace(role)

	if name == "" || email == "" || password == "" {
		return nil, ErrInvalidInput
	}
	if role == "" {
		role = models.RoleGuest
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, stores.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	stored := user.Password
	valid := false
	if utils.IsBcryptHash(stored) {
		valid = utils.VerifyPassword(stored, password)
	} else if stored != "" && stored == password {
		valid = true
		if hash, hErr := utils.HashPassword(password); hErr == nil {
			if uErr := s.Users.UpdatePassword(ctx, user.ID, hash); uErr != nil {
				log.Printf("warning: failed to upgrade password hash for user %d: %v", user.ID, uErr)
			}
		}
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
