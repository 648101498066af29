package img2ascii

import "testing"

func TestBlockCacheGetOrCompute(t *testing.T) {
	c := NewBlockCache()
	c.Reset(4)

	computed := 0
	compute := func() float64 {
		computed++
		return 0.25
	}

	v, hit := c.GetOrCompute(BlockKey{Row: 1, Col: 2}, compute)
	if hit || v != 0.25 {
		t.Errorf("Expected miss with 0.25, got hit=%v v=%f", hit, v)
	}
	v, hit = c.GetOrCompute(BlockKey{Row: 1, Col: 2}, compute)
	if !hit || v != 0.25 {
		t.Errorf("Expected hit with 0.25, got hit=%v v=%f", hit, v)
	}
	if computed != 1 {
		t.Errorf("Expected one computation, got %d", computed)
	}

	// Transposed position is a different block.
	if _, hit := c.GetOrCompute(BlockKey{Row: 2, Col: 1}, compute); hit {
		t.Error("Expected (2,1) to miss")
	}

	want := CacheStats{Hits: 1, Misses: 2, Entries: 2, Resolution: 4}
	if got := c.Stats(); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestBlockCacheReset(t *testing.T) {
	c := NewBlockCache()
	if c.Resolution() != 0 {
		t.Errorf("Expected no resolution, got %d", c.Resolution())
	}
	if !c.Reset(8) {
		t.Error("Expected first Reset to report a change")
	}
	c.GetOrCompute(BlockKey{}, func() float64 { return 1 })

	if c.Reset(8) {
		t.Error("Expected same resolution to keep entries")
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}

	if !c.Reset(16) {
		t.Error("Expected new resolution to report a change")
	}
	if c.Len() != 0 {
		t.Errorf("Expected cache cleared, got %d entries", c.Len())
	}
	if c.Resolution() != 16 {
		t.Errorf("Expected resolution 16, got %d", c.Resolution())
	}

	// Same key at the new resolution must be recomputed.
	v, hit := c.GetOrCompute(BlockKey{}, func() float64 { return 0.5 })
	if hit || v != 0.5 {
		t.Errorf("Expected stale entry to be gone, got hit=%v v=%f", hit, v)
	}
}
