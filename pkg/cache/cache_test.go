package cache_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/msa-lab/order-service/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "orders:42", cache.Key("orders", "42"))
}

func TestLRUCache_SetGet(t *testing.T) {
	c := cache.NewLRUCache(10, time.Minute)

	c.Set("orders:1", []byte("one"))

	got, ok := c.Get("orders:1")
	require.True(t, ok)
	assert.Equal(t, []byte("one"), got)

	_, ok = c.Get("orders:2")
	assert.False(t, ok)
}

func TestLRUCache_Overwrite(t *testing.T) {
	c := cache.NewLRUCache(10, time.Minute)

	c.Set("orders:1", []byte("one"))
	c.Set("orders:1", []byte("uno"))

	got, ok := c.Get("orders:1")
	require.True(t, ok)
	assert.Equal(t, []byte("uno"), got)
	assert.Equal(t, 1, c.Size())
}

func TestLRUCache_Expiration(t *testing.T) {
	c := cache.NewLRUCache(10, 30*time.Millisecond)

	c.Set("orders:1", []byte("one"))
	time.Sleep(50 * time.Millisecond)

	_, ok := c.Get("orders:1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_CapacityEviction(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("orders:1", []byte("one"))
	c.Set("orders:2", []byte("two"))

	// обращение поднимает orders:1 в голову списка
	_, ok := c.Get("orders:1")
	require.True(t, ok)

	c.Set("orders:3", []byte("three"))

	_, ok = c.Get("orders:2")
	assert.False(t, ok, "least recently used entry should be evicted")

	_, ok = c.Get("orders:1")
	assert.True(t, ok)
	_, ok = c.Get("orders:3")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Size())
}

func TestLRUCache_EvictNamespace(t *testing.T) {
	c := cache.NewLRUCache(100, time.Minute)

	for i := 1; i <= 5; i++ {
		c.Set(cache.Key("orders", fmt.Sprint(i)), []byte("order"))
	}
	c.Set(cache.Key("products", "1"), []byte("product"))

	c.EvictNamespace("orders")

	for i := 1; i <= 5; i++ {
		_, ok := c.Get(cache.Key("orders", fmt.Sprint(i)))
		assert.False(t, ok, "orders:%d should be evicted", i)
	}

	got, ok := c.Get(cache.Key("products", "1"))
	require.True(t, ok, "other namespaces must survive eviction")
	assert.Equal(t, []byte("product"), got)
	assert.Equal(t, 1, c.Size())
}

func TestLRUCache_EvictNamespace_Empty(t *testing.T) {
	c := cache.NewLRUCache(10, time.Minute)

	c.EvictNamespace("orders")
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_EvictNamespace_PrefixIsExact(t *testing.T) {
	c := cache.NewLRUCache(10, time.Minute)

	c.Set("orders:1", []byte("order"))
	c.Set("orders_archive:1", []byte("archive"))

	c.EvictNamespace("orders")

	_, ok := c.Get("orders:1")
	assert.False(t, ok)
	_, ok = c.Get("orders_archive:1")
	assert.True(t, ok)
}
