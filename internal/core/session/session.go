// Package session holds server-side login state keyed by an opaque
// token that travels in a cookie. The store is injected into request
// handling; there is no package-level state.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-gin-account-portal/internal/domain"
)

// Session binds a token to an authenticated user plus a cached role.
// ExpiresAt is absolute: set once at creation, never slid by refresh.
type Session struct {
	UserID    string      `json:"userId"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

func (s *Session) IsExpired() bool { return time.Now().After(s.ExpiresAt) }

// Store is the session backend. Get returns (nil, nil) for unknown or
// expired tokens. Set derives the entry's remaining lifetime from the
// session's ExpiresAt, so re-writing a session during refresh keeps
// the original expiry.
type Store interface {
	Get(ctx context.Context, token string) (*Session, error)
	Set(ctx context.Context, token string, s *Session) error
	Destroy(ctx context.Context, token string) error
}

// NewToken returns an opaque session token.
func NewToken() string { return uuid.NewString() }

// New builds a session for a freshly authenticated user with an
// absolute TTL from now.
func New(u *domain.User, ttl time.Duration) *Session {
	return &Session{
		UserID:    u.ID,
		Role:      u.Role,
		ExpiresAt: time.Now().Add(ttl),
	}
}
