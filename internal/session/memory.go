package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a map and reaps expired entries on a fixed period.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time

	reapTicker *time.Ticker
	reapStop   chan struct{}
	stopOnce   sync.Once
}

// NewMemoryStore creates a memory store whose reaper runs every checkPeriod.
// A non-positive period disables the reaper; expired sessions are still hidden from Get.
func NewMemoryStore(checkPeriod time.Duration) *MemoryStore {
	m := &MemoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}

	if checkPeriod > 0 {
		m.reapTicker = time.NewTicker(checkPeriod)
		m.reapStop = make(chan struct{})
		go m.reap()
	}

	return m
}

// Get returns the session for id, or nil when it is unknown or expired.
func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok || s.Expired(m.now()) {
		return nil, nil
	}
	return &s, nil
}

// Set stores s under id, expiring after ttl.
func (m *MemoryStore) Set(_ context.Context, id string, s Session, ttl time.Duration) error {
	now := m.now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.ExpiresAt = now.Add(ttl)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return nil
}

// Destroy removes the session for id. Unknown ids are ignored.
func (m *MemoryStore) Destroy(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored sessions, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the reaper goroutine.
func (m *MemoryStore) Close() error {
	m.stopOnce.Do(func() {
		if m.reapTicker != nil {
			m.reapTicker.Stop()
		}
		if m.reapStop != nil {
			close(m.reapStop)
		}
	})
	return nil
}

func (m *MemoryStore) reap() {
	for {
		select {
		case <-m.reapTicker.C:
			m.reapExpired()
		case <-m.reapStop:
			return
		}
	}
}

// reapExpired drops every session past its expiry.
func (m *MemoryStore) reapExpired() {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, id)
		}
	}
}
