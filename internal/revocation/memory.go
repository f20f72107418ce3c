package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process local denylist for development and tests
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// SetClock replaces the time source used to expire entries
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Revoke records token until ttl elapses. A second call keeps the first expiry.
func (s *MemoryStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expiresAt, ok := s.entries[token]; ok && now.Before(expiresAt) {
		return nil
	}
	s.entries[token] = now.Add(ttl)
	return nil
}

// IsRevoked reports whether token has an unexpired entry
func (s *MemoryStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.entries[token]
	if !ok {
		return false, nil
	}
	if !s.now().Before(expiresAt) {
		delete(s.entries, token)
		return false, nil
	}
	return true, nil
}

// Len returns the number of entries, including expired ones not yet dropped
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
