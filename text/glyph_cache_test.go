package text

import (
	"errors"
	"sync"
	"testing"

	"golang.org/x/image/font/sfnt"
)

func TestGlyphCacheHitMiss(t *testing.T) {
	c := newGlyphCache(4)
	loads := 0
	load := func() (sfnt.Segments, error) {
		loads++
		return sfnt.Segments{{Op: sfnt.SegmentOpMoveTo}}, nil
	}

	key := glyphKey{gid: 3, ppem: 640}
	for range 3 {
		segs, err := c.getOrLoad(key, load)
		if err != nil || len(segs) != 1 {
			t.Fatalf("getOrLoad() = %v, %v", segs, err)
		}
	}
	if loads != 1 {
		t.Errorf("loads = %d, want 1", loads)
	}
	if hits, misses := c.Stats(); hits != 2 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses; want 2, 1", hits, misses)
	}
}

func TestGlyphCacheErrorsCached(t *testing.T) {
	c := newGlyphCache(4)
	loads := 0
	for range 2 {
		_, err := c.getOrLoad(glyphKey{gid: 9}, func() (sfnt.Segments, error) {
			loads++
			return nil, sfnt.ErrNotFound
		})
		if !errors.Is(err, sfnt.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	}
	if loads != 1 {
		t.Errorf("loads = %d, want 1", loads)
	}
}

func TestGlyphCacheEviction(t *testing.T) {
	c := newGlyphCache(2)
	load := func() (sfnt.Segments, error) { return nil, nil }

	c.getOrLoad(glyphKey{gid: 1}, load)
	c.getOrLoad(glyphKey{gid: 2}, load)
	c.getOrLoad(glyphKey{gid: 1}, load) // 2 is now least recently used
	c.getOrLoad(glyphKey{gid: 3}, load)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	reloaded := false
	c.getOrLoad(glyphKey{gid: 1}, func() (sfnt.Segments, error) {
		reloaded = true
		return nil, nil
	})
	if reloaded {
		t.Error("recently used glyph 1 was evicted")
	}
	c.getOrLoad(glyphKey{gid: 2}, func() (sfnt.Segments, error) {
		reloaded = true
		return nil, nil
	})
	if !reloaded {
		t.Error("least recently used glyph 2 was not evicted")
	}
}

func TestGlyphCacheConcurrent(t *testing.T) {
	c := newGlyphCache(8)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := glyphKey{gid: sfnt.GlyphIndex(i % 12)}
			_, _ = c.getOrLoad(key, func() (sfnt.Segments, error) { return nil, nil })
		}()
	}
	wg.Wait()
	if c.Len() > 8 {
		t.Errorf("Len() = %d, exceeds capacity 8", c.Len())
	}
}

func TestTextUsesGlyphCache(t *testing.T) {
	f, err := ParseFont(DefaultFontData())
	if err != nil {
		t.Fatal(err)
	}
	Text{Content: "aaaa", Size: 12, Font: f}.Flatten(0.1)
	if hits, misses := f.glyphs.Stats(); misses != 1 || hits != 3 {
		t.Errorf("Stats() = %d hits, %d misses; want 3, 1", hits, misses)
	}
}
