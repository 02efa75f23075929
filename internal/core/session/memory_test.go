package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-account-portal/internal/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	defer m.Close()

	u := &domain.User{ID: "u1", Role: domain.RoleModerator}
	tok := NewToken()
	require.NoError(t, m.Set(ctx, tok, New(u, time.Hour)))

	got, err := m.Get(ctx, tok)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, domain.RoleModerator, got.Role)

	require.NoError(t, m.Destroy(ctx, tok))
	got, err = m.Get(ctx, tok)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	m := NewMemoryStore()
	defer m.Close()
	got, err := m.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	defer m.Close()

	tok := NewToken()
	s := &Session{UserID: "u1", Role: domain.RoleViewer, ExpiresAt: time.Now().Add(-time.Second)}
	require.NoError(t, m.Set(ctx, tok, s))

	got, err := m.Get(ctx, tok)
	require.NoError(t, err)
	assert.Nil(t, got, "expired session must read as absent")
	assert.Equal(t, 0, m.len(), "lazy expiry drops the entry")
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	defer m.Close()

	require.NoError(t, m.Set(ctx, "dead1", &Session{ExpiresAt: time.Now().Add(-time.Minute)}))
	require.NoError(t, m.Set(ctx, "dead2", &Session{ExpiresAt: time.Now().Add(-time.Minute)}))
	require.NoError(t, m.Set(ctx, "live", &Session{ExpiresAt: time.Now().Add(time.Minute)}))

	assert.Equal(t, 2, m.Sweep())
	assert.Equal(t, 1, m.len())
}

func TestRefreshKeepsExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	defer m.Close()

	exp := time.Now().Add(time.Hour).Truncate(time.Millisecond)
	tok := NewToken()
	require.NoError(t, m.Set(ctx, tok, &Session{UserID: "u1", Role: domain.RoleViewer, ExpiresAt: exp}))

	// Re-write with a changed role, as the refresh middleware does.
	got, err := m.Get(ctx, tok)
	require.NoError(t, err)
	got.Role = domain.RoleAdmin
	require.NoError(t, m.Set(ctx, tok, got))

	got, err = m.Get(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, got.Role)
	assert.True(t, got.ExpiresAt.Equal(exp), "refresh must not slide the absolute expiry")
}
