// Package session provides time-boxed session stores used by the authentication layer.
package session

import (
	"context"
	"time"
)

// DefaultCheckPeriod is how often the memory store reaps expired sessions.
const DefaultCheckPeriod = 24 * time.Hour

// Session is the server-side record behind an issued token.
type Session struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at t.
func (s *Session) Expired(t time.Time) bool {
	return !s.ExpiresAt.After(t)
}

// Store persists sessions by id. Get returns nil, nil for unknown or expired ids.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Set(ctx context.Context, id string, s Session, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
	Close() error
}
