package service

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/internal/models"
	"blog-backend/internal/repository"
)

type UserService struct {
	userRepo  *repository.UserRepository
	auditRepo *repository.AuditRepository
}

func NewUserService(userRepo *repository.UserRepository, auditRepo *repository.AuditRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

// GetAllUsers lists every registered user
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, unavailable("list users", err)
	}
	return users, nil
}

// DeleteUser removes user and their posts. Categories used by those posts remain.
func (s *UserService) DeleteUser(ctx context.Context, user *models.User) error {
	if err := s.userRepo.DeleteUser(ctx, user.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownUser
		}
		return unavailable("delete user", err)
	}

	// Audit log
	details := fmt.Sprintf("Deleted user %s (ID: %d)", user.Username, user.ID)
	_ = s.auditRepo.CreateAuditLog(ctx, nil, "user_delete", details)

	return nil
}
