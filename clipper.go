package virtlist

// clipInput carries the per-recalculation inputs a strategy reads.
// sizeOf returns the measured-else-default size for a loaded index and
// is only called with indices in [0, loaded).
type clipInput struct {
	scrollPos   float32
	clientSize  float32
	defaultSize float32
	overscan    int
	loaded      int
	sizeOf      func(index int) float32
}

// strategy computes the renderable window for one recalculation.
// Exactly one strategy is selected when the engine is built:
// proportional when the total dataset size is known, walk when the
// loaded list is the complete dataset.
type strategy interface {
	// computeWindow maps the current scroll state to a Window.
	computeWindow(in clipInput) Window

	// itemExtent returns the leading-edge offset and size of an index
	// under this strategy's mapping, for the inverse (index -> scroll
	// position) direction. index is clamped to the addressable range.
	itemExtent(in clipInput, index int) (offset, size float32)

	// count returns the logical dataset size given the loaded count.
	count(loaded int) int

	name() string
}

// proportionalStrategy maps scroll position directly to item index
// assuming a uniform default size. Used when the total item count is
// known even if not all items are loaded: the scrollbar must reflect
// the true total extent, and large offsets must map to an index without
// accumulated drift.
type proportionalStrategy struct {
	totalItems int
}

func (s proportionalStrategy) name() string { return "proportional" }

func (s proportionalStrategy) count(int) int { return s.totalItems }

func (s proportionalStrategy) computeWindow(in clipInput) Window {
	if s.totalItems <= 0 || in.defaultSize <= 0 {
		return Window{}
	}

	// TotalSize is intentionally unaffected by measured sizes so the
	// scrollbar stays stable while items are measured.
	totalSize := float32(s.totalItems) * in.defaultSize

	targetIndex := clampi(int(in.scrollPos/in.defaultSize), 0, s.totalItems-1)
	fullStart := targetIndex - in.overscan
	if fullStart < 0 {
		fullStart = 0
	}
	offset := float32(fullStart) * in.defaultSize

	// Walk forward until the window covers the viewport plus overscan
	// on both sides. Unloaded indices contribute the default size.
	limit := in.clientSize + 2*float32(in.overscan)*in.defaultSize
	accum := float32(0)
	fullEnd := fullStart
	for i := fullStart; i < s.totalItems; i++ {
		if i < in.loaded {
			accum += in.sizeOf(i)
		} else {
			accum += in.defaultSize
		}
		fullEnd = i
		if accum >= limit {
			break
		}
	}

	win := Window{
		StartOffset: offset,
		TotalSize:   totalSize,
	}
	if in.loaded > 0 {
		win.StartIndex = clampi(fullStart, 0, in.loaded-1)
		win.EndIndex = clampi(fullEnd, 0, in.loaded-1)
	}

	// Virtual slots inside the window beyond the last loaded item.
	lastLoaded := in.loaded - 1
	if lastLoaded < 0 {
		lastLoaded = 0
	}
	if after := fullEnd - lastLoaded; after > 0 {
		win.PlaceholdersAfter = after
	}
	return win
}

func (s proportionalStrategy) itemExtent(in clipInput, index int) (float32, float32) {
	// The default unit, not measured sizes, exactly inverts the
	// targetIndex formula in computeWindow: drag-to-position and
	// index-to-position round-trip.
	index = clampi(index, 0, s.totalItems)
	return float32(index) * in.defaultSize, in.defaultSize
}

// walkStrategy locates the window by accumulating measured-else-default
// sizes from index 0. Used when the total count is unknown, which
// implies the loaded list is the complete dataset; the full-sum
// TotalSize recomputation per call is acceptable for that bounded case.
type walkStrategy struct{}

func (walkStrategy) name() string { return "walk" }

func (walkStrategy) count(loaded int) int { return loaded }

func (walkStrategy) computeWindow(in clipInput) Window {
	if in.loaded == 0 {
		return Window{}
	}

	viewTop := maxf(0, in.scrollPos-float32(in.overscan)*in.defaultSize)
	viewBottom := in.scrollPos + in.clientSize + float32(in.overscan)*in.defaultSize

	start := -1
	end := -1
	var offset float32
	var accum float32
	var lastSize float32
	for i := 0; i < in.loaded; i++ {
		size := in.sizeOf(i)
		if start < 0 && accum+size > viewTop {
			start = i
			offset = accum
		}
		accum += size
		if end < 0 && start >= 0 && accum >= viewBottom {
			end = i
		}
		lastSize = size
	}

	if start < 0 {
		// Scrolled past all items.
		start = in.loaded - 1
		offset = accum - lastSize
	}
	if end < 0 {
		end = in.loaded - 1
	}

	return Window{
		StartIndex:  start,
		EndIndex:    end,
		StartOffset: offset,
		TotalSize:   accum,
	}
}

func (walkStrategy) itemExtent(in clipInput, index int) (float32, float32) {
	index = clampi(index, 0, in.loaded)
	var offset float32
	for i := 0; i < index; i++ {
		offset += in.sizeOf(i)
	}
	if index < in.loaded {
		return offset, in.sizeOf(index)
	}
	return offset, in.defaultSize
}
