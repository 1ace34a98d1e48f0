package matrix_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gfshard/internal/matrix"
)

func TestCacheGetPutRoundTrip(t *testing.T) {
	t.Parallel()
	c := matrix.NewInversionCache(4)
	key := matrix.Key(4, 6, []int{0, 1, 2, 3})
	_, ok := c.Get(key)
	assert.False(t, ok)

	inv := matrix.Identity(4)
	c.Put(key, inv)

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, inv, got)
}

func TestCacheEvictsOldestWhenFull(t *testing.T) {
	t.Parallel()
	c := matrix.NewInversionCache(2)
	c.Put("a", matrix.Identity(2))
	c.Put("b", matrix.Identity(2))
	c.Put("c", matrix.Identity(2))

	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry should have been evicted")

	_, ok = c.Get("b")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestCacheDefaultSize(t *testing.T) {
	t.Parallel()
	c := matrix.NewInversionCache(0)
	for i := 0; i < matrix.DefaultCacheSize+10; i++ {
		c.Put(matrix.Key(4, 6, []int{i}), matrix.Identity(1))
	}
	assert.Equal(t, matrix.DefaultCacheSize, c.Len())
}

func TestCacheLookupTracksStats(t *testing.T) {
	t.Parallel()
	c := matrix.NewInversionCache(4)
	key := matrix.Key(3, 5, []int{0, 1, 2})
	c.Put(key, matrix.Identity(3))

	_, _ = c.Lookup(key)
	_, _ = c.Lookup("missing")

	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestCacheConcurrentAccess(t *testing.T) {
	t.Parallel()
	c := matrix.NewInversionCache(32)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := matrix.Key(4, 6, []int{i % 10})
			c.Put(key, matrix.Identity(2))
			c.Get(key)
		}(i)
	}
	wg.Wait()
}

func TestKeyDiffersByRowOrder(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, matrix.Key(4, 6, []int{0, 1}), matrix.Key(4, 6, []int{1, 0}))
}
