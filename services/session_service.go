package services

import (
	"context"
	"fmt"
	"time"

	"blissful-abodes/models"
	"blissful-abodes/stores"
	"blissful-abodes/utils"
)

// SessionService issues and resolves opaque session tokens. The token is the
// only thing the client holds; identity and role live server-side.
type SessionService struct {
	Sessions stores.SessionStore
	TTL      time.Duration
}

func NewSessionService(sessions stores.SessionStore, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{Sessions: sessions, TTL: ttl}
}

// Establish creates a session for a freshly authenticated user.
func (s *SessionService) Establish(ctx context.Context, user *models.User) (*models.Session, error) {
	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.TTL),
	}
	if err := s.Sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Fetch(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, stores.ErrSessionNotFound
	}
	session, err := s.Sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		_ = s.Sessions.Delete(ctx, token)
		return nil, stores.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, token)
}

// Flash stores a one-shot message on the session, shown by the next view.
func (s *SessionService) Flash(ctx context.Context, token, kind, message string) error {
	session, err := s.Fetch(ctx, token)
	if err != nil {
		return err
	}
	session.Flash = message
	session.FlashKind = kind
	return s.Sessions.Put(ctx, session)
}

// PopFlash returns and clears the pending flash message, if any.
func (s *SessionService) PopFlash(ctx context.Context, token string) (kind, message string) {
	session, err := s.Fetch(ctx, token)
	if err != nil || session.Flash == "" {
		return "", ""
	}
	kind, message = session.FlashKind, session.Flash
	session.Flash = ""
	session.FlashKind = ""
	if err := s.Sessions.Put(ctx, session); err != nil {
		return "", ""
	}
	return kind, message
}
