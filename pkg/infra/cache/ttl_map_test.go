package cache

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLMap_Expiry(t *testing.T) {
	m := NewTTLMap(20 * time.Millisecond)
	m.Set("a", "x")

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	time.Sleep(40 * time.Millisecond)
	_, ok = m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestTTLMap_SetWithTTLOverridesDefault(t *testing.T) {
	m := NewTTLMap(time.Hour)
	m.SetWithTTL("short", 1, 10*time.Millisecond)
	m.Set("long", 2)

	time.Sleep(30 * time.Millisecond)
	_, ok := m.Get("short")
	assert.False(t, ok)
	_, ok = m.Get("long")
	assert.True(t, ok)

	m.Delete("long")
	_, ok = m.Get("long")
	assert.False(t, ok)
	assert.Equal(t, time.Hour, m.TTL())
}

func TestTTLMap_DeleteExpired(t *testing.T) {
	m := NewTTLMap(time.Hour)
	m.SetWithTTL("stale-1", 1, time.Millisecond)
	m.SetWithTTL("stale-2", 2, time.Millisecond)
	m.Set("fresh", 3)

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 2, m.DeleteExpired())
	assert.Equal(t, 1, m.Len())
}

func TestTTLMap_JanitorSweepsUnreadKeys(t *testing.T) {
	m := NewTTLMap(time.Millisecond)
	for i := 0; i < 10000; i++ {
		m.Set(strconv.Itoa(i), i)
	}
	assert.Equal(t, 10000, m.Len())

	m.StartJanitor(5 * time.Millisecond)
	defer m.Stop()

	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestTTLMap_StopWithoutJanitor(t *testing.T) {
	m := NewTTLMap(time.Minute)
	m.Stop()

	m.StartJanitor(time.Millisecond)
	m.StartJanitor(time.Millisecond)
	m.Stop()
	m.Stop()
}

func TestKeys(t *testing.T) {
	a := EmbeddingKey("jina", "jina-clip-v2", "red shoes")
	b := EmbeddingKey("jina", "jina-clip-v2", "blue shoes")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, EmbeddingKey("jina", "jina-clip-v2", "red shoes"))
	assert.Contains(t, a, "sneakerlens:embedding:")

	assert.Equal(t, SearchKey(" Air Max ", 5, ""), SearchKey("air max", 5, ""))
	assert.NotEqual(t, SearchKey("air max", 5, ""), SearchKey("air max", 6, ""))
}
