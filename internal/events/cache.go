// Package events keeps the shared event feed snapshot and decides whether it is still fresh.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/careerpath/internal/storage"
	"github.com/jonathan/careerpath/internal/types"
)

// DefaultTTL is how long a snapshot counts as fresh.
const DefaultTTL = time.Hour

// Snapshot is the cache content plus its freshness at read time.
type Snapshot struct {
	Events   []json.RawMessage `json:"events"`
	CachedAt *time.Time        `json:"cachedAt"`
	Fresh    bool              `json:"fresh"`
}

// Cache wraps the singleton event cache record with a flat TTL check.
type Cache struct {
	store storage.Events
	ttl   time.Duration
	now   func() time.Time
}

// NewCache creates a cache over store. A non-positive ttl uses DefaultTTL.
func NewCache(store storage.Events, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: store, ttl: ttl, now: time.Now}
}

// Current returns the stored events. Fresh is false when nothing is cached or the snapshot
// is at least ttl old.
func (c *Cache) Current(ctx context.Context) (*Snapshot, error) {
	cached, err := c.store.GetCachedEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read event cache: %w", err)
	}
	if cached == nil {
		return &Snapshot{Events: []json.RawMessage{}}, nil
	}
	return &Snapshot{
		Events:   nonNil(cached.Events),
		CachedAt: &cached.CachedAt,
		Fresh:    c.now().Sub(cached.CachedAt) < c.ttl,
	}, nil
}

// Refresh replaces the snapshot with events.
func (c *Cache) Refresh(ctx context.Context, events []json.RawMessage) (*types.EventCache, error) {
	cached, err := c.store.SetCachedEvents(ctx, nonNil(events))
	if err != nil {
		return nil, fmt.Errorf("failed to write event cache: %w", err)
	}
	return cached, nil
}

func nonNil(events []json.RawMessage) []json.RawMessage {
	if events == nil {
		return []json.RawMessage{}
	}
	return events
}
