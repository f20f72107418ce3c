package models

import "time"

// RevokedToken is a denylist entry for a logged out bearer token.
// Only the SHA-256 hash of the token is stored.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for RevokedToken model
func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
