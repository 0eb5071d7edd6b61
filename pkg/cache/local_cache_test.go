package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalCache(t *testing.T) {
	lc := NewLocalCache(time.Minute)

	_, ok := lc.Get("k")
	assert.False(t, ok)

	lc.Set("k", "v")
	v, ok := lc.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, 1, lc.Size())

	lc.Delete("k")
	_, ok = lc.Get("k")
	assert.False(t, ok)
}

func TestLocalCacheExpire(t *testing.T) {
	lc := NewLocalCache(50 * time.Millisecond)

	lc.Set("k", "v")
	time.Sleep(100 * time.Millisecond)

	_, ok := lc.Get("k")
	assert.False(t, ok)
}

func TestLocalCacheNoExpiration(t *testing.T) {
	lc := NewLocalCache(0)

	lc.Set("k", "v")
	time.Sleep(50 * time.Millisecond)

	_, ok := lc.Get("k")
	assert.True(t, ok)
}
