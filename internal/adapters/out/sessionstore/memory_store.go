// Package sessionstore keeps one-time codes, temporary sessions and revoked
// token ids. MemoryStore serves single-process deployments and tests;
// RedisStore shares the state between replicas.
package sessionstore

import (
	"context"
	"sync"
	"time"

	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/errs"
)

// MemoryStore is a ports.SessionStore guarded by one mutex.
type MemoryStore struct {
	mu        sync.Mutex
	codes     map[string]session.OneTimeCode
	temporary map[string]session.TemporarySession
	revoked   map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		codes:     make(map[string]session.OneTimeCode),
		temporary: make(map[string]session.TemporarySession),
		revoked:   make(map[string]time.Time),
	}
}

func (s *MemoryStore) SaveCode(_ context.Context, code session.OneTimeCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[code.Email] = code
	return nil
}

func (s *MemoryStore) ConsumeCode(_ context.Context, email, code string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.codes[email]
	if !ok {
		return session.ErrCodeNotFound
	}
	if pending.IsExpired(now) {
		delete(s.codes, email)
		return session.ErrCodeExpired
	}
	if !pending.Matches(code) {
		return session.ErrCodeMismatch
	}

	delete(s.codes, email)
	return nil
}

func (s *MemoryStore) SaveTemporarySession(_ context.Context, ts session.TemporarySession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.temporary[ts.ID] = ts
	return nil
}

func (s *MemoryStore) GetTemporarySession(_ context.Context, id string, now time.Time) (session.TemporarySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, ok := s.temporary[id]
	if !ok || ts.IsExpired(now) {
		return session.TemporarySession{}, errs.NewObjectNotFoundError("temporary_session", id)
	}
	return ts, nil
}

func (s *MemoryStore) RevokeToken(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.revoked[tokenID] = expiresAt
	return nil
}

func (s *MemoryStore) IsTokenRevoked(_ context.Context, tokenID string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.revoked[tokenID]
	return ok && now.Before(expiresAt), nil
}

func (s *MemoryStore) PurgeExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for email, code := range s.codes {
		if code.IsExpired(now) {
			delete(s.codes, email)
			purged++
		}
	}
	for id, ts := range s.temporary {
		if ts.IsExpired(now) {
			delete(s.temporary, id)
			purged++
		}
	}
	for id, expiresAt := range s.revoked {
		if !now.Before(expiresAt) {
			delete(s.revoked, id)
			purged++
		}
	}
	return purged, nil
}

// Clear drops every entry.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.codes)
	clear(s.temporary)
	clear(s.revoked)
}
