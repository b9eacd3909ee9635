package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_Get(t *testing.T) {
	m := NewManager()
	defer m.Close()

	a := m.Get("session-a")
	b := m.Get("session-b")

	assert.NotSame(t, a, b)
	assert.Same(t, a, m.Get("session-a"))
}

func TestManager_EvictIdle(t *testing.T) {
	m := NewManager()
	defer m.Close()

	m.Get("stale")
	m.Get("fresh")

	m.mu.Lock()
	m.sessions["stale"].lastSeen = time.Now().Add(-SessionTTL - time.Minute)
	m.mu.Unlock()

	m.evictIdle(time.Now())

	m.mu.Lock()
	_, staleOK := m.sessions["stale"]
	_, freshOK := m.sessions["fresh"]
	m.mu.Unlock()

	assert.False(t, staleOK)
	assert.True(t, freshOK)
}
