package store

import (
	"context"
	"testing"
	"time"

	"github.com/DominikMe/acs-token-exchange/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New("sqlite", ":memory:")
	require.NoError(t, err)
	return s
}

func makeMapping(externalID string, expiry time.Time) *models.UserMapping {
	return &models.UserMapping{
		ExternalUserID:   externalID,
		IdentityProvider: "aad",
		BackingUserID:    "8:acs:" + uuid.New().String(),
		Token:            "tok-" + uuid.New().String()[:8],
		TokenExpiry:      expiry,
	}
}

func TestGetMapping_NotFound(t *testing.T) {
	s := setupTestStore(t)

	m, err := s.GetMapping(context.Background(), "unknown-user")
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrMappingNotFound)
}

func TestUpsertMapping_CreateThenGet(t *testing.T) {
	s := setupTestStore(t)
	expiry := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	in := makeMapping("u1", expiry)

	require.NoError(t, s.UpsertMapping(context.Background(), in))

	out, err := s.GetMapping(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, in.ExternalUserID, out.ExternalUserID)
	assert.Equal(t, in.BackingUserID, out.BackingUserID)
	assert.Equal(t, in.Token, out.Token)
	assert.WithinDuration(t, expiry, out.TokenExpiry, time.Second)
}

func TestUpsertMapping_LastWriterWins(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	first := makeMapping("u1", time.Now().Add(time.Hour))
	require.NoError(t, s.UpsertMapping(ctx, first))

	// Second write for the same key replaces token fields, never adds a row.
	second := makeMapping("u1", time.Now().Add(48*time.Hour))
	second.BackingUserID = first.BackingUserID
	require.NoError(t, s.UpsertMapping(ctx, second))

	out, err := s.GetMapping(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, second.Token, out.Token)

	count, err := s.CountMappings(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCountExpiringMappings(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertMapping(ctx, makeMapping("fresh", time.Now().Add(24*time.Hour))))
	require.NoError(t, s.UpsertMapping(ctx, makeMapping("stale", time.Now().Add(10*time.Minute))))
	require.NoError(t, s.UpsertMapping(ctx, makeMapping("expired", time.Now().Add(-time.Minute))))

	count, err := s.CountExpiringMappings(ctx, time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	total, err := s.CountMappings(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestHealth(t *testing.T) {
	s := setupTestStore(t)
	assert.NoError(t, s.Health())
}
