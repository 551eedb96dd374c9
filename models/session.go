package models

import "time"

// Session is the per-client login context. It lives in the session store
// (memory or Redis), never in MySQL, and disappears at logout or expiry.
// Flash carries a one-shot message consumed by the next page load.
type Session struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`

	Flash     string `json:"flash,omitempty"`
	FlashKind string `json:"flash_kind,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
