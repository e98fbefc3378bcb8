package virtlist_test

import (
	"testing"

	"github.com/go-theft-auto/virtlist"
)

func TestSizeCacheBasics(t *testing.T) {
	c := virtlist.NewSizeCache()

	if _, ok := c.Get("a"); ok {
		t.Error("Get on empty cache should miss")
	}

	c.Set("a", 42)
	if size, ok := c.Get("a"); !ok || size != 42 {
		t.Errorf("Get(a) = %v, %v; want 42, true", size, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestSizeCacheMeasure(t *testing.T) {
	c := virtlist.NewSizeCache()

	if !c.Measure("a", 30) {
		t.Error("first measurement should report a change")
	}
	if c.Measure("a", 30) {
		t.Error("identical measurement should not report a change")
	}
	if !c.Measure("a", 35) {
		t.Error("different measurement should report a change")
	}

	// Non-positive sizes mean "not yet renderable": ignored, cached
	// value retained.
	if c.Measure("a", 0) || c.Measure("a", -1) {
		t.Error("non-positive measurement should not report a change")
	}
	if size, _ := c.Get("a"); size != 35 {
		t.Errorf("cached size = %v, want 35 retained", size)
	}

	// A non-positive first measurement caches nothing.
	if c.Measure("b", 0) {
		t.Error("non-positive first measurement should not report a change")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("non-positive measurement should not create an entry")
	}
}

func TestSizeCacheEvictAndClear(t *testing.T) {
	c := virtlist.NewSizeCache()
	c.Set("a", 10)
	c.Set("b", 20)

	c.Evict("a")
	if _, ok := c.Get("a"); ok {
		t.Error("evicted entry should miss")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d after evict, want 1", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len = %d after clear, want 0", c.Len())
	}
}

func TestSizeCacheMixedKeyTypes(t *testing.T) {
	// Default keys are ints (indices); custom key functions commonly
	// return strings. The cache takes any comparable key.
	c := virtlist.NewSizeCache()
	c.Set(0, 10)
	c.Set("0", 20)

	if size, _ := c.Get(0); size != 10 {
		t.Errorf("Get(0) = %v, want 10", size)
	}
	if size, _ := c.Get("0"); size != 20 {
		t.Errorf("Get(\"0\") = %v, want 20", size)
	}
}
