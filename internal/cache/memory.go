package cache

import (
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore is a bounded in-process LRU whose entries expire after the TTL.
type MemoryStore struct {
	lru        *expirable.LRU[string, *Entry]
	ttlSeconds int
}

// NewMemoryStore holds at most size entries for ttlSeconds each.
func NewMemoryStore(size, ttlSeconds int) *MemoryStore {
	if size <= 0 {
		size = 1
	}
	return &MemoryStore{
		lru:        expirable.NewLRU[string, *Entry](size, nil, time.Duration(ttlSeconds)*time.Second),
		ttlSeconds: ttlSeconds,
	}
}

// Get returns the entry for key or ErrCacheNotFound.
func (m *MemoryStore) Get(key string) (*Entry, error) {
	if key == "" {
		return nil, ErrInvalidCacheKey
	}
	entry, ok := m.lru.Get(key)
	if !ok {
		return nil, ErrCacheNotFound
	}
	if entry.IsExpired() {
		m.lru.Remove(key)
		return nil, ErrCacheExpired
	}
	return entry, nil
}

// Set stores data under key with the store's TTL.
func (m *MemoryStore) Set(key string, data json.RawMessage) error {
	if key == "" {
		return ErrInvalidCacheKey
	}
	m.lru.Add(key, NewEntry(key, data, m.ttlSeconds))
	return nil
}

// Delete removes key.
func (m *MemoryStore) Delete(key string) error {
	if key == "" {
		return ErrInvalidCacheKey
	}
	m.lru.Remove(key)
	return nil
}

// Clear drops every entry.
func (m *MemoryStore) Clear() error {
	m.lru.Purge()
	return nil
}

// Len returns the number of live entries.
func (m *MemoryStore) Len() int {
	return m.lru.Len()
}
