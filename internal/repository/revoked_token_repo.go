package repository

import (
	"context"
	"time"

	"blog-backend/internal/models"
	"blog-backend/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevokedTokenRepository is a denylist of logged out tokens kept in the
// credential database, for deployments without redis.
type RevokedTokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRevokedTokenRepo(db *gorm.DB) *RevokedTokenRepository {
	return &RevokedTokenRepository{db: db, now: time.Now}
}

// SetClock replaces the time source used to expire entries
func (r *RevokedTokenRepository) SetClock(now func() time.Time) {
	r.now = now
}

// Revoke stores the hash of token until ttl elapses. Revoking the same token
// again keeps the first entry. Entries that already expired are purged here.
func (r *RevokedTokenRepository) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	now := r.now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expires_at <= ?", now).Delete(&models.RevokedToken{}).Error; err != nil {
			return err
		}

		entry := &models.RevokedToken{
			TokenHash: utils.HashToken(token),
			ExpiresAt: now.Add(ttl),
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(entry).Error
	})
}

// IsRevoked reports whether token has an unexpired denylist entry
func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RevokedToken{}).
		Where("token_hash = ? AND expires_at > ?", utils.HashToken(token), r.now().UTC()).
		Count(&count).Error
	return count > 0, err
}
