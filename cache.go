package virtlist

import "sync"

// SizeCache maps logical item keys to their last-measured size.
// Keying by logical key instead of physical index means a reordered
// item keeps its known size across recalculations.
//
// Entries are never evicted by the engine: the cache lives for the
// engine's lifetime and grows with the set of distinct keys measured.
// Hosts whose key space churns (ever-changing keys for a bounded list)
// can call Evict or Clear themselves.
//
// Unlike the rest of the engine, the cache is safe for concurrent use:
// a host may measure from its render pass while another goroutine
// inspects Len.
type SizeCache struct {
	sizes map[any]float32
	mu    sync.RWMutex
}

// NewSizeCache creates an empty size cache.
func NewSizeCache() *SizeCache {
	return &SizeCache{
		sizes: make(map[any]float32),
	}
}

// Get returns the measured size for key, if one has been recorded.
func (c *SizeCache) Get(key any) (float32, bool) {
	c.mu.RLock()
	size, ok := c.sizes[key]
	c.mu.RUnlock()
	return size, ok
}

// Set records a measured size for key unconditionally.
func (c *SizeCache) Set(key any, size float32) {
	c.mu.Lock()
	c.sizes[key] = size
	c.mu.Unlock()
}

// Measure records a rendered size for key and reports whether the
// cached value changed. Non-positive sizes mean "not yet renderable"
// and are ignored, keeping any previously cached value.
//
// The engine uses the return value to coalesce many measurements within
// one synchronous block into a single recalculation.
func (c *SizeCache) Measure(key any, size float32) bool {
	if size <= 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.sizes[key]; ok && prev == size {
		return false
	}
	c.sizes[key] = size
	return true
}

// Evict removes the entry for key, if any.
func (c *SizeCache) Evict(key any) {
	c.mu.Lock()
	delete(c.sizes, key)
	c.mu.Unlock()
}

// Clear removes all entries.
func (c *SizeCache) Clear() {
	c.mu.Lock()
	c.sizes = make(map[any]float32)
	c.mu.Unlock()
}

// Len returns the number of cached sizes.
// Useful for monitoring unbounded-growth concerns.
func (c *SizeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sizes)
}
