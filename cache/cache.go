// Package cache holds the process-local read snapshots used for the small,
// rarely written tables.
package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is how long a snapshot is served before the next read refetches.
const DefaultTTL = 5 * time.Minute

type Option func(*options)

type options struct {
	now     func() time.Time
	observe func(hit bool)
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithObserver is called once per Load with whether the snapshot was served.
func WithObserver(fn func(hit bool)) Option {
	return func(o *options) { o.observe = fn }
}

// Snapshot caches the full result of a list query. Expiry is checked lazily
// on read; nothing runs in the background. Safe for concurrent use.
type Snapshot[T any] struct {
	mu         sync.Mutex
	ttl        time.Duration
	now        func() time.Time
	observe    func(hit bool)
	items      []T
	fetchedAt  time.Time
	valid      bool
	generation uint64
}

// New returns an empty snapshot. A ttl <= 0 disables caching.
func New[T any](ttl time.Duration, opts ...Option) *Snapshot[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Snapshot[T]{ttl: ttl, now: o.now, observe: o.observe}
}

// Get returns a copy of the cached items if they are younger than the TTL.
func (s *Snapshot[T]) Get() ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked()
}

func (s *Snapshot[T]) getLocked() ([]T, bool) {
	if !s.valid || s.ttl <= 0 || s.now().Sub(s.fetchedAt) >= s.ttl {
		return nil, false
	}
	return clone(s.items), true
}

// Set stores items and restarts the TTL.
func (s *Snapshot[T]) Set(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(items)
}

func (s *Snapshot[T]) setLocked(items []T) {
	s.items = clone(items)
	s.fetchedAt = s.now()
	s.valid = true
}

// Invalidate drops the snapshot. A Load already fetching when this is called
// will not store its result.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.valid = false
	s.generation++
}

// Load serves the snapshot when fresh, otherwise calls fetch and stores what
// it returns. fetch errors are returned as is and leave the cache empty.
func (s *Snapshot[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) ([]T, error) {
	s.mu.Lock()
	if items, ok := s.getLocked(); ok {
		s.mu.Unlock()
		s.record(true)
		return items, nil
	}
	gen := s.generation
	s.mu.Unlock()
	s.record(false)

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.generation == gen {
		s.setLocked(items)
	}
	s.mu.Unlock()

	return items, nil
}

func (s *Snapshot[T]) record(hit bool) {
	if s.observe != nil {
		s.observe(hit)
	}
}

func clone[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
