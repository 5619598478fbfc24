package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTieredGetPut(t *testing.T) {
	t.Parallel()

	c := New()
	key := Key{Theme: "light@1", Input: "bg-primary"}

	_, ok := c.Get(TierToken, key)
	require.False(t, ok)

	c.Put(TierToken, key, "background: #1677FF;")
	value, ok := c.Get(TierToken, key)
	require.True(t, ok)
	assert.Equal(t, "background: #1677FF;", value)

	_, ok = c.Get(TierClass, key)
	assert.False(t, ok, "tiers are independent")
}

func TestTieredKeysAreThemeScoped(t *testing.T) {
	t.Parallel()

	c := New()
	c.Put(TierToken, Key{Theme: "light@1", Input: "bg-primary"}, "background: #1677FF;")
	c.Put(TierToken, Key{Theme: "dark@2", Input: "bg-primary"}, "background: #1668DC;")

	light, ok := c.Get(TierToken, Key{Theme: "light@1", Input: "bg-primary"})
	require.True(t, ok)
	dark, ok := c.Get(TierToken, Key{Theme: "dark@2", Input: "bg-primary"})
	require.True(t, ok)

	assert.NotEqual(t, light, dark)
	_, ok = c.Get(TierToken, Key{Theme: "light@3", Input: "bg-primary"})
	assert.False(t, ok)
}

func TestTieredClearAndStats(t *testing.T) {
	t.Parallel()

	c := New()
	key := Key{Theme: "light@1", Input: "p-20"}
	c.Put(TierCall, key, "padding: 20rpx;")
	c.Put(TierClass, key, "padding: 20rpx;")
	c.Put(TierToken, key, "padding: 20rpx;")

	_, _ = c.Get(TierToken, key)
	_, _ = c.Get(TierToken, Key{Theme: "light@1", Input: "missing"})

	stats := c.Stats()
	require.Len(t, stats, 3)
	assert.Equal(t, "call", stats[0].Name)
	assert.Equal(t, "token", stats[2].Name)
	assert.Equal(t, 1, stats[2].Entries)
	assert.Equal(t, uint64(1), stats[2].Hits)
	assert.Equal(t, uint64(1), stats[2].Misses)

	c.Clear()
	for _, tr := range Tiers {
		assert.Zero(t, c.Len(tr), tr.String())
	}
	assert.Equal(t, uint64(1), c.Stats()[2].Hits)
}

func TestTieredRejectsUnknownTier(t *testing.T) {
	t.Parallel()

	c := New()
	c.Put(Tier(9), Key{Input: "x"}, "y")
	_, ok := c.Get(Tier(9), Key{Input: "x"})
	assert.False(t, ok)
	assert.Zero(t, c.Len(Tier(-1)))
	assert.Equal(t, "unknown", Tier(9).String())
}

func TestJoinInputs(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, JoinInputs([]string{"a b"}), JoinInputs([]string{"a", "b"}))
	assert.NotEqual(t, JoinInputs([]string{"ab", ""}), JoinInputs([]string{"a", "b"}))
	assert.Equal(t, "5:hflex", JoinInputs([]string{"hflex"}))
	assert.Equal(t, "", JoinInputs(nil))
}

func TestTieredConcurrency(t *testing.T) {
	t.Parallel()

	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := Key{Theme: "light@1", Input: "p-20"}
				c.Put(TierToken, key, "padding: 20rpx;")
				c.Get(TierToken, key)
				if j%25 == 0 {
					c.Clear()
				}
			}
		}(i)
	}
	wg.Wait()
}
