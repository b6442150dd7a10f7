package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLMap_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewTTLMap(time.Minute)
	m.now = func() time.Time { return now }

	m.Set("a", "1")
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	now = now.Add(2 * time.Minute)
	_, ok = m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_Purge(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewTTLMap(time.Minute)
	m.now = func() time.Time { return now }

	m.Set("old", 1)
	now = now.Add(30 * time.Second)
	m.Set("new", 2)
	now = now.Add(45 * time.Second)

	assert.Equal(t, 1, m.Purge())
	assert.Equal(t, 1, m.Len())
	_, ok := m.Get("new")
	assert.True(t, ok)
}

func TestTTLMap_DeleteAndClear(t *testing.T) {
	m := NewTTLMap(time.Hour)
	m.Set("a", 1)
	m.Set("b", 2)

	m.Delete("a")
	_, ok := m.Get("a")
	assert.False(t, ok)

	m.Clear()
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_JanitorReclaimsUnreadEntries(t *testing.T) {
	m := NewTTLMap(time.Millisecond)
	stop := m.StartJanitor(5 * time.Millisecond)
	defer stop()

	for i := 0; i < 1000; i++ {
		m.Set(fmt.Sprintf("idea-%d", i), i)
	}
	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestTTLMap_JanitorStopIsIdempotent(t *testing.T) {
	m := NewTTLMap(time.Millisecond)
	stop := m.StartJanitor(time.Millisecond)
	stop()
	stop()

	m.Set("a", 1)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, m.Len())
}
