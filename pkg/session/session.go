package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNoSession indicates the context carries no session.
var ErrNoSession = errors.New("session: no session in context")

// Session identifies the signed-in tenant for the lifetime of a
// request. It is created at sign-in by the identity provider adapter
// and torn down at sign-out; nothing here is ambient global state.
type Session struct {
	TenantID uuid.UUID
	Email    string
	FirmName string
}

type ctxKey struct{}

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext retrieves the session from the context, if present.
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(Session)
	return sess, ok
}
