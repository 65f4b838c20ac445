// Package store owns the canonical content collections. Each store holds one
// entity kind in memory, seeds itself with defaults when nothing usable is
// persisted, and mirrors every mutation back to the content database as a
// single JSON document. In-memory state is the source of truth; the persisted
// document is a write-through copy that is never re-read between operations.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Storage keys, one JSON document per entity kind.
const (
	KeyFaculty       = "sorsu_faculty"
	KeyAnnouncements = "sorsu_announcements"
	KeyEvents        = "sorsu_events"
	KeyCalendar      = "sorsu_calendar"
	KeyUsers         = "sorsu_users"
)

// Entity is anything a collection can own.
type Entity interface {
	EntityID() string
}

// KV abstracts the local key-value storage backing every collection.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Collection is the shared store mechanics instantiated per entity kind.
// Mutations never fail the caller: storage errors are logged and the
// in-memory collection keeps going.
type Collection[T Entity] struct {
	mu     sync.RWMutex
	kv     KV
	key    string
	items  []T
	logger *zap.Logger
}

// NewCollection loads the persisted document for key, falling back to seed
// when the document is missing or does not parse. When rejectEmpty is set an
// empty persisted array is also treated as missing.
func NewCollection[T Entity](kv KV, key string, seed []T, rejectEmpty bool, logger *zap.Logger) *Collection[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Collection[T]{kv: kv, key: key, logger: logger}
	c.items = c.load(seed, rejectEmpty)
	return c
}

func (c *Collection[T]) load(seed []T, rejectEmpty bool) []T {
	raw, ok, err := c.kv.Get(context.Background(), c.key)
	if err != nil {
		c.logger.Warn("failed to read collection, using seed", zap.String("key", c.key), zap.Error(err))
		return append([]T(nil), seed...)
	}
	if !ok {
		return append([]T(nil), seed...)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn("corrupt collection document, using seed", zap.String("key", c.key), zap.Error(err))
		return append([]T(nil), seed...)
	}
	if rejectEmpty && len(items) == 0 {
		return append([]T(nil), seed...)
	}
	return items
}

// All returns a copy of the collection in its current order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// Len reports the number of items.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Add prepends an item so the newest entry lists first. Duplicate IDs are not
// rejected; a later Delete removes every copy sharing the ID.
func (c *Collection[T]) Add(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
	c.persistLocked()
}

// Update applies fn to every item whose ID matches and writes the collection
// through. A missing ID is a silent no-op.
func (c *Collection[T]) Update(id string, fn func(T) T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.EntityID() == id {
			c.items[i] = fn(item)
		}
	}
	c.persistLocked()
}

// Delete removes every item whose ID matches. A missing ID is a silent no-op.
func (c *Collection[T]) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.persistLocked()
}

// GetByID returns the first item with a matching ID.
func (c *Collection[T]) GetByID(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// persistLocked serializes the whole collection under its key. Callers must
// hold the write lock. Failures are logged only: no durability is promised
// beyond best effort, and the in-memory state stays authoritative.
func (c *Collection[T]) persistLocked() {
	raw, err := json.Marshal(c.items)
	if err != nil {
		c.logger.Error("failed to encode collection", zap.String("key", c.key), zap.Error(err))
		return
	}
	if err := c.kv.Set(context.Background(), c.key, raw); err != nil {
		c.logger.Error("failed to persist collection", zap.String("key", c.key), zap.Error(err))
	}
}
