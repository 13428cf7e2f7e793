package text

import (
	"sync"
	"sync/atomic"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// defaultGlyphCacheEntries bounds the number of outlines cached per font.
const defaultGlyphCacheEntries = 1024

// glyphKey identifies a glyph outline at one size.
type glyphKey struct {
	gid  sfnt.GlyphIndex
	ppem fixed.Int26_6
}

// glyphEntry is a cached outline and its place in the LRU list.
type glyphEntry struct {
	key      glyphKey
	segments sfnt.Segments
	err      error

	prev, next *glyphEntry
}

// glyphCache is an LRU cache of glyph outlines for a single font.
// Failed loads are cached as well so that missing glyphs are not looked up
// again.
//
// glyphCache is safe for concurrent use.
type glyphCache struct {
	mu         sync.Mutex
	entries    map[glyphKey]*glyphEntry
	head, tail *glyphEntry // most and least recently used
	maxEntries int

	hits, misses atomic.Uint64
}

func newGlyphCache(maxEntries int) *glyphCache {
	if maxEntries <= 0 {
		maxEntries = defaultGlyphCacheEntries
	}
	return &glyphCache{
		entries:    make(map[glyphKey]*glyphEntry),
		maxEntries: maxEntries,
	}
}

// getOrLoad returns the cached outline for key or calls load. The returned
// segments are shared and must not be modified.
func (c *glyphCache) getOrLoad(key glyphKey, load func() (sfnt.Segments, error)) (sfnt.Segments, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.moveToFront(e)
		c.mu.Unlock()
		c.hits.Add(1)
		return e.segments, e.err
	}
	c.mu.Unlock()
	c.misses.Add(1)

	// load outside the lock; concurrent misses on one key load twice
	segments, err := load()

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		c.moveToFront(e)
		return e.segments, e.err
	}
	e := &glyphEntry{key: key, segments: segments, err: err}
	c.entries[key] = e
	c.addToFront(e)
	for len(c.entries) > c.maxEntries {
		delete(c.entries, c.removeTail().key)
	}
	return segments, err
}

// Len returns the number of cached outlines.
func (c *glyphCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *glyphCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *glyphCache) addToFront(e *glyphEntry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *glyphCache) moveToFront(e *glyphEntry) {
	if c.head == e {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *glyphCache) remove(e *glyphEntry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

func (c *glyphCache) removeTail() *glyphEntry {
	e := c.tail
	if e != nil {
		c.remove(e)
	}
	return e
}
