package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a mutex-guarded map. Expired entries
// are dropped lazily on Get and collected by an optional janitor.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	stop     chan struct{}
	stopOnce sync.Once
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		stop:     make(chan struct{}),
	}
}

func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if s.IsExpired() {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return nil, nil
	}
	cp := s
	return &cp, nil
}

func (m *MemoryStore) Set(_ context.Context, token string, s *Session) error {
	m.mu.Lock()
	m.sessions[token] = *s
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Destroy(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

// Sweep removes every expired entry and reports how many were dropped.
func (m *MemoryStore) Sweep() int {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for tok, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, tok)
			n++
		}
	}
	return n
}

// StartJanitor sweeps on the given interval until Close is called.
func (m *MemoryStore) StartJanitor(interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				m.Sweep()
			case <-m.stop:
				return
			}
		}
	}()
}

func (m *MemoryStore) Close() { m.stopOnce.Do(func() { close(m.stop) }) }

func (m *MemoryStore) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
