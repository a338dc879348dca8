package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	base := Fingerprint(OpQuote, 1, "p=1|n=4|sd=2025-06-01")

	// Одинаковые входы дают одинаковый ключ
	assert.Equal(t, base, Fingerprint(OpQuote, 1, "p=1|n=4|sd=2025-06-01"))

	// Другая операция, версия или запрос — другой ключ
	assert.NotEqual(t, base, Fingerprint(OpValidate, 1, "p=1|n=4|sd=2025-06-01"))
	assert.NotEqual(t, base, Fingerprint(OpQuote, 2, "p=1|n=4|sd=2025-06-01"))
	assert.NotEqual(t, base, Fingerprint(OpQuote, 1, "p=1|n=5|sd=2025-06-01"))
}

// Ручные часы вместо time.Now, чтобы управлять истечением TTL
func testCache(ttl time.Duration) (*ResultCache, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New(NewMemoryStore(), map[string]time.Duration{OpQuote: ttl}, nil)
	c.nowFn = func() time.Time { return now }
	return c, &now
}

func TestGetOrComputeCachesResult(t *testing.T) {
	c, _ := testCache(time.Minute)
	ctx := context.Background()

	computations := 0
	compute := func(ctx context.Context) (interface{}, error) {
		computations++
		return "result", nil
	}

	for i := 0; i < 3; i++ {
		value, err := c.GetOrCompute(ctx, OpQuote, 42, 1, compute)
		require.NoError(t, err)
		assert.Equal(t, "result", value)
	}

	assert.Equal(t, 1, computations)
}

func TestGetOrComputeTTLExpiry(t *testing.T) {
	c, now := testCache(time.Minute)
	ctx := context.Background()

	computations := 0
	compute := func(ctx context.Context) (interface{}, error) {
		computations++
		return computations, nil
	}

	_, err := c.GetOrCompute(ctx, OpQuote, 42, 1, compute)
	require.NoError(t, err)

	// До истечения TTL — из кеша
	*now = now.Add(59 * time.Second)
	value, err := c.GetOrCompute(ctx, OpQuote, 42, 1, compute)
	require.NoError(t, err)
	assert.Equal(t, 1, value)

	// После истечения — пересчет
	*now = now.Add(2 * time.Second)
	value, err = c.GetOrCompute(ctx, OpQuote, 42, 1, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, value)
}

func TestGetOrComputeZeroTTLDisablesCaching(t *testing.T) {
	c, _ := testCache(0)
	ctx := context.Background()

	computations := 0
	compute := func(ctx context.Context) (interface{}, error) {
		computations++
		return "result", nil
	}

	for i := 0; i < 3; i++ {
		_, err := c.GetOrCompute(ctx, OpQuote, 42, 1, compute)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, computations)
}

func TestGetOrComputeErrorsNotCached(t *testing.T) {
	c, _ := testCache(time.Minute)
	ctx := context.Background()

	boom := errors.New("storage down")
	calls := 0
	compute := func(ctx context.Context) (interface{}, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "recovered", nil
	}

	_, err := c.GetOrCompute(ctx, OpQuote, 42, 1, compute)
	assert.ErrorIs(t, err, boom)

	value, err := c.GetOrCompute(ctx, OpQuote, 42, 1, compute)
	require.NoError(t, err)
	assert.Equal(t, "recovered", value)
	assert.Equal(t, 2, calls)
}

func TestGetOrComputeSingleFlight(t *testing.T) {
	c := New(NewMemoryStore(), map[string]time.Duration{OpQuote: time.Minute}, nil)
	ctx := context.Background()

	var computations int64
	var computingOnce sync.Once
	computing := make(chan struct{})
	release := make(chan struct{})
	compute := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt64(&computations, 1)
		computingOnce.Do(func() { close(computing) })
		<-release
		return "shared", nil
	}

	var wg sync.WaitGroup
	call := func() {
		defer wg.Done()
		value, err := c.GetOrCompute(ctx, OpQuote, 42, 1, compute)
		assert.NoError(t, err)
		assert.Equal(t, "shared", value)
	}

	// Первый вызов входит в вычисление и блокируется, остальные промахиваются
	// мимо кеша и присоединяются к уже летящему вычислению
	wg.Add(1)
	go call()
	<-computing

	for i := 0; i < 9; i++ {
		wg.Add(1)
		go call()
	}
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	// Конкурентные промахи одного fingerprint схлопнулись в одно вычисление
	assert.Equal(t, int64(1), atomic.LoadInt64(&computations))
}

func TestInvalidateProduct(t *testing.T) {
	c, _ := testCache(time.Minute)
	ctx := context.Background()

	computations := 0
	compute := func(ctx context.Context) (interface{}, error) {
		computations++
		return computations, nil
	}

	_, err := c.GetOrCompute(ctx, OpQuote, 42, 7, compute)
	require.NoError(t, err)

	c.InvalidateProduct(7)

	value, err := c.GetOrCompute(ctx, OpQuote, 42, 7, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, value)
}

func TestMemoryStoreCleanup(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.Put(1, 10, "fresh", now.Add(time.Minute))
	s.Put(2, 10, "stale", now.Add(-time.Minute))
	require.Equal(t, 2, s.Len())

	s.Cleanup(now)

	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(1, now)
	assert.True(t, ok)
	_, ok = s.Get(2, now)
	assert.False(t, ok)
}

func TestMemoryStoreInvalidateProductOnly(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expires := now.Add(time.Minute)

	s.Put(1, 10, "a", expires)
	s.Put(2, 20, "b", expires)
	s.Put(3, 10, "c", expires)

	s.InvalidateProduct(10)

	_, ok := s.Get(1, now)
	assert.False(t, ok)
	_, ok = s.Get(3, now)
	assert.False(t, ok)
	_, ok = s.Get(2, now)
	assert.True(t, ok)
}
