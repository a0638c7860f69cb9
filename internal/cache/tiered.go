package cache

import (
	"encoding/json"
	"errors"
)

// Tiered reads the memory tier first, then disk, promoting disk hits into
// memory. Writes go to both tiers. Disk may be nil.
type Tiered struct {
	Memory *MemoryStore
	Disk   Store
}

// NewTiered combines memory and disk. Pass a nil disk for memory-only caching.
func NewTiered(memory *MemoryStore, disk Store) *Tiered {
	return &Tiered{Memory: memory, Disk: disk}
}

// Get returns the first live entry found for key.
func (t *Tiered) Get(key string) (*Entry, error) {
	entry, err := t.Memory.Get(key)
	if err == nil {
		return entry, nil
	}
	if !IsMiss(err) || t.Disk == nil {
		return nil, err
	}

	entry, err = t.Disk.Get(key)
	if err != nil {
		return nil, err
	}
	_ = t.Memory.Set(key, entry.Data)
	return entry, nil
}

// Set writes data to every tier. A disabled disk tier is not an error.
func (t *Tiered) Set(key string, data json.RawMessage) error {
	if err := t.Memory.Set(key, data); err != nil {
		return err
	}
	if t.Disk == nil {
		return nil
	}
	if err := t.Disk.Set(key, data); err != nil && !errors.Is(err, ErrCacheDisabled) {
		return err
	}
	return nil
}

// Delete removes key from every tier.
func (t *Tiered) Delete(key string) error {
	if err := t.Memory.Delete(key); err != nil {
		return err
	}
	if t.Disk == nil {
		return nil
	}
	if err := t.Disk.Delete(key); err != nil && !errors.Is(err, ErrCacheDisabled) {
		return err
	}
	return nil
}

// Clear empties every tier.
func (t *Tiered) Clear() error {
	_ = t.Memory.Clear()
	if t.Disk == nil {
		return nil
	}
	if err := t.Disk.Clear(); err != nil && !errors.Is(err, ErrCacheDisabled) {
		return err
	}
	return nil
}
