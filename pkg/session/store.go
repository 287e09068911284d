package session

import "context"

// Store persists sessions keyed by their opaque token.
type Store interface {
	// GetByToken retrieves a session. Returns ErrSessionNotFound when the
	// token is unknown or expired.
	GetByToken(ctx context.Context, token string) (*Session, error)

	// Save creates or refreshes a session.
	Save(ctx context.Context, session *Session) error

	// Delete removes a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
