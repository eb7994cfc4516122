// Package utils provides general-purpose helpers shared across the server:
// type-safe context keys, the session token codec, HTTP response writing,
// the HTTP client used by outbound adapters, request signing and trace ids.
package utils

import (
	"context"

	"github.com/MKhiriev/go-expense-tracker/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the session middleware stores the
// decoded *models.Session of the current request.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the request session.
//
// ok is false when the value is missing, nil or has an unexpected type.
func GetSessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(*models.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}
