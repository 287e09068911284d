package session

import (
	"context"

	"github.com/google/uuid"
)

type sessionContextKey struct{}

// WithSession adds a session to the context.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// FromContext retrieves a session from the context.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(*Session)
	return sess, ok
}

// WorkspaceIDFromContext retrieves the workspace ID of the authenticated
// session in context.
func WorkspaceIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	sess, ok := FromContext(ctx)
	if !ok || !sess.IsAuthenticated() {
		return uuid.Nil, false
	}
	return sess.WorkspaceID, true
}
