package virtlist

// minThumbSize keeps the scrollbar thumb grabbable on huge lists.
const minThumbSize = 20

// ScrollToIndex sets the viewport's scroll position so that the next
// recalculation treats index as (approximately) the new leading edge.
// Out-of-range indices are clamped. Without an attached viewport this
// is a silent no-op.
//
// Under the proportional strategy the position is index * defaultItemSize
// regardless of measured sizes: the exact inverse of the forward
// scroll-to-index mapping, so drag-to-position and index-to-position
// round-trip. Under the walk strategy the position is the sum of
// measured-else-default sizes of items [0, index).
func (e *Engine[T]) ScrollToIndex(index int) {
	if e.viewport == nil {
		return
	}
	offset, _ := e.strat.itemExtent(e.input(), index)
	e.viewport.SetScrollPos(e.axis, offset)
	e.OnScroll()
}

// EnsureVisible scrolls the minimum distance needed to bring index into
// the viewport: to its near edge if it is outside, not at all if it is
// already visible. Out-of-range indices are clamped.
func (e *Engine[T]) EnsureVisible(index int) {
	if e.viewport == nil {
		return
	}
	count := e.Count()
	if count == 0 {
		return
	}
	index = clampi(index, 0, count-1)

	in := e.input()
	offset, size := e.strat.itemExtent(in, index)

	if offset < in.scrollPos {
		// Above the viewport: scroll up to the item's top.
		e.viewport.SetScrollPos(e.axis, offset)
		e.OnScroll()
	} else if offset+size > in.scrollPos+in.clientSize {
		// Below the viewport: scroll down until the item's bottom shows.
		e.viewport.SetScrollPos(e.axis, maxf(0, offset+size-in.clientSize))
		e.OnScroll()
	}
}

// ItemOffset returns the leading-edge position of index under the
// active strategy. Out-of-range indices are clamped; index == Count()
// yields the position just past the last item.
func (e *Engine[T]) ItemOffset(index int) float32 {
	offset, _ := e.strat.itemExtent(e.input(), index)
	return offset
}

// MaxScroll returns the largest meaningful scroll position given the
// published total size and the current client extent. Zero when the
// content fits or no viewport is attached.
func (e *Engine[T]) MaxScroll() float32 {
	if e.viewport == nil {
		return 0
	}
	return maxf(0, e.win.TotalSize-e.viewport.ClientSize(e.axis))
}

// ScrollbarThumb computes the thumb size and offset for a host-drawn
// scrollbar along a track of the given extent, both in track units.
// When the content fits the viewport the thumb fills the track.
func (e *Engine[T]) ScrollbarThumb(trackExtent float32) (size, offset float32) {
	if e.viewport == nil || trackExtent <= 0 {
		return trackExtent, 0
	}
	client := e.viewport.ClientSize(e.axis)
	total := e.win.TotalSize
	if total <= client || total <= 0 {
		return trackExtent, 0
	}

	size = maxf(minThumbSize, trackExtent*client/total)
	if size > trackExtent {
		size = trackExtent
	}
	maxScroll := total - client
	scroll := clampf(e.viewport.ScrollPos(e.axis), 0, maxScroll)
	offset = (scroll / maxScroll) * (trackExtent - size)
	return size, offset
}
