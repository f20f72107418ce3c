package repository

import (
	"context"
	"testing"
	"time"

	"blog-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevokedTokenRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewRevokedTokenRepo(db)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo.SetClock(func() time.Time { return now })
	ctx := context.Background()

	revoked, err := repo.IsRevoked(ctx, "token")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, "token", 30*time.Minute))
	require.NoError(t, repo.Revoke(ctx, "token", 30*time.Minute), "revoking twice is harmless")

	revoked, err = repo.IsRevoked(ctx, "token")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.IsRevoked(ctx, "other")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(31 * time.Minute)

	revoked, err = repo.IsRevoked(ctx, "token")
	require.NoError(t, err)
	assert.False(t, revoked, "entry expires with the token")

	require.NoError(t, repo.Revoke(ctx, "fresh", time.Minute))

	var rows []models.RevokedToken
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1, "expired entries are purged on write")
}

func TestRevokedTokenRepository_StoresOnlyHash(t *testing.T) {
	db := newTestDB(t)
	repo := NewRevokedTokenRepo(db)

	require.NoError(t, repo.Revoke(context.Background(), "raw-token-value", time.Minute))

	var row models.RevokedToken
	require.NoError(t, db.First(&row).Error)
	assert.NotEqual(t, "raw-token-value", row.TokenHash)
	assert.Len(t, row.TokenHash, 64)
}
