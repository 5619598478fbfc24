package cache

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Tier identifies one of the three memoization levels.
type Tier int

const (
	// TierCall memoizes a whole Parse call.
	TierCall Tier = iota
	// TierClass memoizes one space separated class string.
	TierClass
	// TierToken memoizes a single token.
	TierToken

	tierCount
)

// Tiers lists every tier from outermost to innermost.
var Tiers = []Tier{TierCall, TierClass, TierToken}

func (t Tier) String() string {
	switch t {
	case TierCall:
		return "call"
	case TierClass:
		return "class"
	case TierToken:
		return "token"
	default:
		return "unknown"
	}
}

// Key scopes a cached fragment to the theme build it was computed under.
type Key struct {
	Theme string
	Input string
}

// Stats summarizes one tier.
type Stats struct {
	Tier    Tier   `json:"-"`
	Name    string `json:"tier"`
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

type tier struct {
	entries map[Key]string
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// Tiered holds the call, class and token caches.
type Tiered struct {
	mu    sync.RWMutex
	tiers [tierCount]*tier
}

// New returns an empty Tiered cache.
func New() *Tiered {
	c := &Tiered{}
	for i := range c.tiers {
		c.tiers[i] = &tier{entries: make(map[Key]string)}
	}
	return c
}

// Get returns the fragment cached at tier for key.
func (c *Tiered) Get(t Tier, key Key) (string, bool) {
	tr, ok := c.tier(t)
	if !ok {
		return "", false
	}

	c.mu.RLock()
	value, hit := tr.entries[key]
	c.mu.RUnlock()

	if hit {
		tr.hits.Add(1)
	} else {
		tr.misses.Add(1)
	}
	return value, hit
}

// Put stores value at tier for key.
func (c *Tiered) Put(t Tier, key Key, value string) {
	tr, ok := c.tier(t)
	if !ok {
		return
	}

	c.mu.Lock()
	tr.entries[key] = value
	c.mu.Unlock()
}

// Clear drops every entry in every tier. Counters are kept.
func (c *Tiered) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, tr := range c.tiers {
		tr.entries = make(map[Key]string)
	}
}

// Len returns the number of entries held at tier.
func (c *Tiered) Len(t Tier) int {
	tr, ok := c.tier(t)
	if !ok {
		return 0
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(tr.entries)
}

// Stats reports entries, hits and misses for every tier, outermost first.
func (c *Tiered) Stats() []Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Stats, 0, len(c.tiers))
	for _, t := range Tiers {
		tr := c.tiers[t]
		out = append(out, Stats{
			Tier:    t,
			Name:    t.String(),
			Entries: len(tr.entries),
			Hits:    tr.hits.Load(),
			Misses:  tr.misses.Load(),
		})
	}
	return out
}

func (c *Tiered) tier(t Tier) (*tier, bool) {
	if c == nil || t < 0 || t >= tierCount {
		return nil, false
	}
	return c.tiers[t], true
}

// JoinInputs builds the exact call-level key for a list of inputs. Each input
// is length prefixed, so ("a b") and ("a", "b") never collide.
func JoinInputs(inputs []string) string {
	var b strings.Builder
	for _, in := range inputs {
		b.WriteString(strconv.Itoa(len(in)))
		b.WriteByte(':')
		b.WriteString(in)
	}
	return b.String()
}
