// Package cache provides a content-addressed cache for shaped text outlines.
//
// Shaping and outline flattening dominate the cost of re-laying out a sign
// when only placement parameters change, so the surrounding application keys
// results by content (language, text, pixel size, and font identity) and
// reuses them across edits. The cache is an explicit component handed to its
// users; there is no package-level state, and the placement engine itself
// never caches.
package cache

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/lumineer/ledlayout/glyph"
)

// Key addresses one shaped run by content.
type Key uint64

// KeyOf hashes the run's identifying content. fontID must distinguish fonts;
// hashing the font file bytes once with [FontID] is the usual choice.
func KeyOf(lang, text string, ppem float64, fontID uint64) Key {
	h := xxhash.New()
	_, _ = h.WriteString(lang)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(text)
	var num [16]byte
	binary.LittleEndian.PutUint64(num[:8], math.Float64bits(ppem))
	binary.LittleEndian.PutUint64(num[8:], fontID)
	_, _ = h.Write(num[:])
	return Key(h.Sum64())
}

// FontID hashes font file bytes into an identity usable with [KeyOf].
func FontID(fontData []byte) uint64 {
	return xxhash.Sum64(fontData)
}

// Cache is a bounded, concurrent-safe cache of shaped runs. Eviction samples
// a handful of entries and removes the least recently used of the sample,
// which approximates LRU without ordering bookkeeping on every hit.
type Cache struct {
	mu       sync.RWMutex
	entries  map[Key]*entry
	capacity int
	clock    uint64
}

type entry struct {
	glyphs   []glyph.Glyph
	lastUsed uint64
}

// evictionSamples is how many entries an eviction inspects.
const evictionSamples = 8

// New returns a cache bounded to capacity entries. Capacity must be
// positive.
func New(capacity int) *Cache {
	if capacity <= 0 {
		panic("cache: capacity must be positive")
	}
	return &Cache{
		entries:  make(map[Key]*entry, capacity),
		capacity: capacity,
	}
}

// Get returns the cached run for the key, if present.
func (c *Cache) Get(key Key) ([]glyph.Glyph, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.clock++
	e.lastUsed = c.clock
	return e.glyphs, true
}

// Put stores a shaped run, evicting if the cache is full. Storing an
// existing key refreshes its value.
func (c *Cache) Put(key Key, glyphs []glyph.Glyph) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock++
	if e, ok := c.entries[key]; ok {
		e.glyphs = glyphs
		e.lastUsed = c.clock
		return
	}
	if len(c.entries) >= c.capacity {
		c.evictLocked()
	}
	c.entries[key] = &entry{
		glyphs:   glyphs,
		lastUsed: c.clock,
	}
}

// Len returns the number of cached runs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictLocked removes the least recently used entry of a small sample. Map
// iteration order serves as the sampling; it need not be uniform, only
// cheap.
func (c *Cache) evictLocked() {
	var victim Key
	oldest := ^uint64(0)
	sampled := 0
	for key, e := range c.entries {
		if e.lastUsed < oldest {
			oldest = e.lastUsed
			victim = key
		}
		sampled++
		if sampled >= evictionSamples {
			break
		}
	}
	delete(c.entries, victim)
}
