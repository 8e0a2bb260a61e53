package cache

import (
	"sync"
	"time"
)

type ttlEntry struct {
	value     interface{}
	expiresAt time.Time
}

// TTLMap is a concurrency-safe map whose entries expire. Expired entries are dropped on read
// and, once StartJanitor has been called, by a periodic sweep.
type TTLMap struct {
	data map[string]*ttlEntry
	mu   sync.RWMutex
	ttl  time.Duration

	janitorMu sync.Mutex
	stop      chan struct{}
	done      chan struct{}
}

func NewTTLMap(ttl time.Duration) *TTLMap {
	return &TTLMap{
		data: make(map[string]*ttlEntry),
		ttl:  ttl,
	}
}

// Get returns the value for key if present and not expired. Expired entries are evicted lazily.
func (m *TTLMap) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	entry, exists := m.data[key]
	if !exists {
		m.mu.RUnlock()
		return nil, false
	}
	expired := time.Now().After(entry.expiresAt)
	value := entry.value
	m.mu.RUnlock()

	if expired {
		m.mu.Lock()
		if current, ok := m.data[key]; ok && time.Now().After(current.expiresAt) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return nil, false
	}
	return value, true
}

func (m *TTLMap) Set(key string, value interface{}) {
	m.SetWithTTL(key, value, m.ttl)
}

func (m *TTLMap) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = &ttlEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (m *TTLMap) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *TTLMap) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]*ttlEntry)
}

func (m *TTLMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *TTLMap) TTL() time.Duration {
	return m.ttl
}

// DeleteExpired removes every expired entry and returns how many were removed.
func (m *TTLMap) DeleteExpired() int {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for key, entry := range m.data {
		if now.After(entry.expiresAt) {
			delete(m.data, key)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps expired entries every interval until Stop is called. Calling it on a map
// that already has a janitor is a no-op.
func (m *TTLMap) StartJanitor(interval time.Duration) {
	if interval <= 0 {
		return
	}
	m.janitorMu.Lock()
	defer m.janitorMu.Unlock()
	if m.stop != nil {
		return
	}
	m.stop = make(chan struct{})
	m.done = make(chan struct{})

	go func(stop <-chan struct{}, done chan<- struct{}) {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.DeleteExpired()
			case <-stop:
				return
			}
		}
	}(m.stop, m.done)
}

// Stop halts the janitor and waits for it to exit.
func (m *TTLMap) Stop() {
	m.janitorMu.Lock()
	defer m.janitorMu.Unlock()
	if m.stop == nil {
		return
	}
	close(m.stop)
	<-m.done
	m.stop = nil
	m.done = nil
}
