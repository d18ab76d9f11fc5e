package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func countingFetch(calls *int, items ...string) func(context.Context) ([]string, error) {
	return func(context.Context) ([]string, error) {
		*calls++
		return items, nil
	}
}

func TestLoadServesSnapshotWithinTTL(t *testing.T) {
	clock := newClock()
	s := New[string](5*time.Minute, WithClock(clock.Now))
	calls := 0
	ctx := context.Background()

	first, err := s.Load(ctx, countingFetch(&calls, "Go", "SQL"))
	require.NoError(t, err)
	clock.Advance(4*time.Minute + 59*time.Second)
	second, err := s.Load(ctx, countingFetch(&calls, "changed"))
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestLoadRefetchesAfterTTL(t *testing.T) {
	clock := newClock()
	s := New[string](5*time.Minute, WithClock(clock.Now))
	calls := 0
	ctx := context.Background()

	_, err := s.Load(ctx, countingFetch(&calls, "Go"))
	require.NoError(t, err)
	clock.Advance(5 * time.Minute)
	items, err := s.Load(ctx, countingFetch(&calls, "Rust"))
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"Rust"}, items)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	s := New[string](time.Hour)
	calls := 0
	ctx := context.Background()

	_, err := s.Load(ctx, countingFetch(&calls, "Go"))
	require.NoError(t, err)
	s.Invalidate()
	_, ok := s.Get()
	assert.False(t, ok)

	_, err = s.Load(ctx, countingFetch(&calls, "Go"))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetchErrorLeavesCacheEmpty(t *testing.T) {
	s := New[string](time.Hour)
	boom := errors.New("boom")

	_, err := s.Load(context.Background(), func(context.Context) ([]string, error) { return nil, boom })

	assert.ErrorIs(t, err, boom)
	_, ok := s.Get()
	assert.False(t, ok)
}

func TestInvalidateDuringFetchDiscardsStaleResult(t *testing.T) {
	s := New[string](time.Hour)

	items, err := s.Load(context.Background(), func(context.Context) ([]string, error) {
		s.Invalidate()
		return []string{"stale"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"stale"}, items)
	_, ok := s.Get()
	assert.False(t, ok)
}

func TestZeroTTLDisablesCaching(t *testing.T) {
	s := New[string](0)
	calls := 0

	for i := 0; i < 3; i++ {
		_, err := s.Load(context.Background(), countingFetch(&calls, "Go"))
		require.NoError(t, err)
	}

	assert.Equal(t, 3, calls)
}

func TestGetReturnsCopy(t *testing.T) {
	s := New[string](time.Hour)
	s.Set([]string{"Go"})

	items, ok := s.Get()
	require.True(t, ok)
	items[0] = "mutated"

	again, _ := s.Get()
	assert.Equal(t, []string{"Go"}, again)
}

func TestObserverSeesHitsAndMisses(t *testing.T) {
	var hits, misses int
	s := New[string](time.Hour, WithObserver(func(hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	}))
	calls := 0

	for i := 0; i < 3; i++ {
		_, err := s.Load(context.Background(), countingFetch(&calls, "Go"))
		require.NoError(t, err)
	}

	assert.Equal(t, 1, misses)
	assert.Equal(t, 2, hits)
}

func TestConcurrentLoadAndInvalidate(t *testing.T) {
	s := New[int](time.Hour)
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, _ = s.Load(context.Background(), func(context.Context) ([]int, error) { return []int{n}, nil })
		}(i)
		go func() {
			defer wg.Done()
			s.Invalidate()
		}()
	}
	wg.Wait()
}
