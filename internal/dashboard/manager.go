package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/XavierBriggs/Janus/internal/logger"
	"github.com/XavierBriggs/Janus/pkg/contracts"
)

// Manager owns the live sessions and persists their navigable state
type Manager struct {
	deps  Deps
	store contracts.SessionStore
	ttl   time.Duration
	log   *logger.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager. Sessions idle for longer than ttl
// are closed by EvictIdle.
func NewManager(deps Deps, store contracts.SessionStore, ttl time.Duration) *Manager {
	deps = deps.withDefaults()
	return &Manager{
		deps:     deps,
		store:    store,
		ttl:      ttl,
		log:      deps.Logger.WithPrefix("Sessions"),
		sessions: make(map[string]*Session),
	}
}

// Open returns the live session for id, restoring it from the store or
// creating it if needed. New sessions are started before they are returned.
func (m *Manager) Open(ctx context.Context, id string) (*Session, error) {
	if s, ok := m.Get(id); ok {
		return s, nil
	}

	state, err := m.store.Load(ctx, id)
	if err != nil {
		// A store outage only costs the saved date and tab
		m.log.Warnf("load session %s: %v", id, err)
		state = nil
	}

	s := NewSession(id, m.deps, state)

	m.mu.Lock()
	if existing, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		s.Close()
		return existing, nil
	}
	m.sessions[id] = s
	m.mu.Unlock()

	s.Start()
	if state == nil {
		m.log.Infof("session %s created", id)
	} else {
		m.log.Infof("session %s restored at %s", id, state.Date)
	}

	if err := m.Persist(ctx, s); err != nil {
		m.log.Warnf("%v", err)
	}
	return s, nil
}

// Get returns a live session
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Persist saves the session's date and active tab
func (m *Manager) Persist(ctx context.Context, s *Session) error {
	if err := m.store.Save(ctx, s.State()); err != nil {
		return fmt.Errorf("save session %s: %w", s.ID(), err)
	}
	return nil
}

// EvictIdle closes sessions idle for longer than the ttl and returns how
// many were evicted. Their saved state stays in the store for restore.
func (m *Manager) EvictIdle() int {
	cutoff := m.deps.Now().Add(-m.ttl)

	m.mu.Lock()
	var idle []*Session
	for id, s := range m.sessions {
		if s.LastActive().Before(cutoff) {
			idle = append(idle, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range idle {
		s.Close()
	}
	return len(idle)
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close closes every live session
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for id, s := range m.sessions {
		sessions = append(sessions, s)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
