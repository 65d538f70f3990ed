package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUEvictsOldest(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)

	// Touch a so b becomes the oldest.
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Set("c", 3)
	assert.Equal(t, 2, c.Len())
	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestLRUUpdate(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("a", 5)
	v, _ := c.Get("a")
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, c.Len())

	c.Delete("a")
	c.Delete("missing")
	assert.Zero(t, c.Len())
}

func TestLRUGetOrSet(t *testing.T) {
	c := New[int, string](4)
	calls := 0
	fn := func() string {
		calls++
		return "x"
	}

	assert.Equal(t, "x", c.GetOrSet(1, fn))
	assert.Equal(t, "x", c.GetOrSet(1, fn))
	assert.Equal(t, 1, calls)

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestLRUMinimumCapacity(t *testing.T) {
	c := New[int, int](0)
	c.Set(1, 1)
	c.Set(2, 2)
	assert.Equal(t, 1, c.Len())
}

func TestLRUConcurrent(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				key := strconv.Itoa((i + j) % 32)
				c.Set(key, j)
				c.Get(key)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
