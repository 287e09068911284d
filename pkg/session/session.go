package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated caller resolved from a bearer token or
// session cookie. Every session is scoped to exactly one workspace.
type Session struct {
	Token       string    `json:"token"`
	UserID      uuid.UUID `json:"user_id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has passed its expiry time.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().UTC().After(s.ExpiresAt)
}

// IsAuthenticated reports whether the session belongs to a real user and
// is still valid.
func (s *Session) IsAuthenticated() bool {
	return s.UserID != uuid.Nil && s.WorkspaceID != uuid.Nil && !s.IsExpired()
}
