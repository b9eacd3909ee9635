package cart

import (
	"sync"
	"time"
)

const (
	// SessionTTL is how long an untouched cart survives before the
	// janitor drops it.
	SessionTTL = 2 * time.Hour

	// CleanupInterval is how often the background cleanup runs.
	CleanupInterval = 5 * time.Minute
)

type session struct {
	store    *Store
	lastSeen time.Time
}

// Manager keeps one Store per storefront session. Stores are created
// lazily on first access and evicted after SessionTTL without use; the
// cart has no persistence beyond the session, matching the storefront's
// page-load lifecycle.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

func NewManager() *Manager {
	m := &Manager{
		sessions:    make(map[string]*session),
		stopCleanup: make(chan struct{}),
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

// Get returns the session's store, creating an empty one on first use.
func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		s = &session{store: NewStore()}
		m.sessions[sessionID] = s
	}
	s.lastSeen = time.Now()
	return s.store
}

// Close stops the cleanup goroutine and waits for it to exit.
func (m *Manager) Close() {
	close(m.stopCleanup)
	m.wg.Wait()
}

func (m *Manager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictIdle(time.Now())
		case <-m.stopCleanup:
			return
		}
	}
}

func (m *Manager) evictIdle(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > SessionTTL {
			delete(m.sessions, id)
		}
	}
}
