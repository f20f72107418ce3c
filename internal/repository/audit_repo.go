package repository

import (
	"context"

	"blog-backend/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(ctx context.Context, userID *uint, action string, details string) error {
	log := &models.AuditLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	}
	return r.db.WithContext(ctx).Omit("User").Create(log).Error
}

// GetAuditLogs returns entries for an action, newest first
func (r *AuditRepository) GetAuditLogs(ctx context.Context, action string) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.db.WithContext(ctx).Where("action = ?", action).Order("id DESC").Find(&logs).Error
	return logs, err
}
