package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"blog-backend/internal/models"
	"blog-backend/internal/repository"
	"blog-backend/pkg/utils"
)

// RevocationStore is the denylist of tokens invalidated before they expire
type RevocationStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// PasswordHasher is a one-way hash with verification
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) bool
}

type AuthService struct {
	userRepo    *repository.UserRepository
	codec       *utils.TokenCodec
	revocations RevocationStore
	hasher      PasswordHasher
}

func NewAuthService(
	userRepo *repository.UserRepository,
	codec *utils.TokenCodec,
	revocations RevocationStore,
	hasher PasswordHasher,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		codec:       codec,
		revocations: revocations,
		hasher:      hasher,
	}
}

// TokenPair is the response of login and refresh
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	// Check if username already exists
	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, unavailable("find user", err)
	}

	// Hash the password
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	// The unique index settles concurrent registrations of the same name
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, unavailable("create user", err)
	}

	return user, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, unavailable("find user", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.issuePair(user.Username)
}

// CurrentUser resolves the user behind an access token. Bad signatures,
// expiry, revocation and deleted users all yield ErrUnauthenticated.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.codec.Verify(token)
	if err != nil || claims.Kind != utils.KindAccess {
		return nil, ErrUnauthenticated
	}

	revoked, err := s.revocations.IsRevoked(ctx, token)
	if err != nil {
		return nil, unavailable("check revocation", err)
	}
	if revoked {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.FindUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, unavailable("find user", err)
	}

	return user, nil
}

// Logout denylists token for as long as it could still be accepted. A token
// that does not verify gets the full access lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	ttl := s.codec.AccessTTL()
	if claims, err := s.codec.Decode(token); err == nil && claims.ExpiresAt != nil {
		if remaining := claims.ExpiresAt.Time.Sub(s.codec.Now()); remaining > 0 {
			ttl = remaining
		}
	}

	if err := s.revocations.Revoke(ctx, token, ttl); err != nil {
		return unavailable("revoke token", err)
	}

	log.Printf("Token revoked, denylisted for %s", ttl.Round(time.Second))
	return nil
}

// Refresh exchanges a refresh token for a new token pair. The presented
// refresh token is not rotated and stays usable until it expires.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.codec.Decode(refreshToken)
	if err != nil || claims.Kind != utils.KindRefresh {
		return nil, ErrInvalidRefreshToken
	}

	if claims.ExpiresAt == nil || !s.codec.Now().Before(claims.ExpiresAt.Time) {
		return nil, ErrExpiredRefreshToken
	}

	user, err := s.userRepo.FindUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, unavailable("find user", err)
	}

	return s.issuePair(user.Username)
}

func (s *AuthService) issuePair(username string) (*TokenPair, error) {
	accessToken, err := s.codec.IssueAccess(username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.codec.IssueRefresh(username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		RefreshToken: refreshToken,
	}, nil
}
