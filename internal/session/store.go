// Package session owns visitor session state: persistence, the unlock
// gate, chat transcripts and the simulated on-chain demos.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/web3hub/hub-engine/internal/models"
)

// Common errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
	ErrChatBusy        = errors.New("a chat reply is already in flight")
	ErrLocked          = errors.New("content is locked")
	ErrCourseNotFound  = errors.New("course not found")
)

// Store persists session records.
type Store interface {
	Put(ctx context.Context, s *models.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	Expired(ctx context.Context, now time.Time) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

// MemoryStore is the in-process Store used when no Redis is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*models.Session)}
}

// Put stores a copy of the session. The TTL is carried on the record
// itself; the sweep in Expired enforces it.
func (m *MemoryStore) Put(_ context.Context, s *models.Session, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

// Get returns a copy of the stored session.
func (m *MemoryStore) Get(_ context.Context, id string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

// Delete removes the session. Deleting an absent session is not an error.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Expired lists session IDs whose expiry is at or before now.
func (m *MemoryStore) Expired(_ context.Context, now time.Time) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []string
	for id, s := range m.sessions {
		if s.IsExpired(now) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Ping always succeeds for the in-memory store.
func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Close releases nothing for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
