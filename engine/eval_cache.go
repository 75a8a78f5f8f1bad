package engine

import "math/bits"

// Largest number of sets a leaf cache may hold; bigger configs are clamped.
const maxLeafCacheSets = 1 << 20

type leafEntry struct {
	key       uint64
	value     float64
	size      int32
	epoch     uint32
	botToMove bool
	used      bool
}

// leafCache memoizes leaf ratios for one searcher at a time. An entry only
// answers a lookup for the same key, grid size and side to move, so zobrist
// tables of different sizes never alias. Sets are ways entries wide and the
// stalest entry of a full set is replaced.
type leafCache struct {
	slots []leafEntry
	ways  int
	mask  uint64
	epoch uint32
}

func newLeafCache(sets, ways int) *leafCache {
	if ways < 1 {
		ways = 1
	}
	if sets < 1 {
		sets = 1
	}
	if sets > maxLeafCacheSets {
		sets = maxLeafCacheSets
	}
	n := uint64(1) << bits.Len64(uint64(sets-1))
	return &leafCache{
		slots: make([]leafEntry, int(n)*ways),
		ways:  ways,
		mask:  n - 1,
		epoch: 1,
	}
}

// newSearch ages every stored entry by one search.
func (c *leafCache) newSearch() {
	c.epoch++
	if c.epoch == 0 {
		c.epoch = 1
	}
}

func (c *leafCache) set(key uint64) []leafEntry {
	start := int(mixKey(key)&c.mask) * c.ways
	return c.slots[start : start+c.ways]
}

func (c *leafCache) lookup(key uint64, size int, botToMove bool) (float64, bool) {
	for _, entry := range c.set(key) {
		if entry.used && entry.key == key && entry.size == int32(size) && entry.botToMove == botToMove {
			return entry.value, true
		}
	}
	return 0, false
}

func (c *leafCache) store(key uint64, size int, botToMove bool, value float64) {
	set := c.set(key)
	victim := 0
	for i := range set {
		entry := &set[i]
		if !entry.used || (entry.key == key && entry.size == int32(size) && entry.botToMove == botToMove) {
			victim = i
			break
		}
		if c.epoch-entry.epoch > c.epoch-set[victim].epoch {
			victim = i
		}
	}
	set[victim] = leafEntry{
		key:       key,
		value:     value,
		size:      int32(size),
		epoch:     c.epoch,
		botToMove: botToMove,
		used:      true,
	}
}

// mixKey spreads a zobrist key over the cache sets.
func mixKey(v uint64) uint64 {
	v ^= v >> 33
	v *= 0xff51afd7ed558ccd
	v ^= v >> 33
	v *= 0xc4ceb9fe1a85ec53
	v ^= v >> 33
	return v
}
