package service

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUnauthenticated     = errors.New("invalid or expired token")
	ErrInvalidRefreshToken = errors.New("refresh token is invalid")
	ErrExpiredRefreshToken = errors.New("refresh token has expired")
	ErrUnknownUser         = errors.New("user not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrCategoryExists      = errors.New("category already exists")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// unavailable marks a store failure so the transport can answer 503
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrServiceUnavailable, op, err)
}
