package virtlist

// KeyFunc derives the logical key for an item at an index.
// Keys index the size cache; see WithKeyFunc.
type KeyFunc[T any] func(item T, index int) any

// Engine computes the renderable window of a large ordered list from
// the scroll state of a host-owned viewport. It owns the size cache and
// the published Window; the host owns the items, the viewport, and all
// rendering.
//
// The engine is single-threaded: every method must be called from the
// host's UI goroutine. Triggers are coalesced through the injected
// Scheduler — scroll events to one recalculation per frame, size
// measurements to one recalculation per synchronous batch. List-length
// changes recalculate immediately.
type Engine[T any] struct {
	items       []T
	keyFn       KeyFunc[T]
	cache       *SizeCache
	defaultSize float32
	overscan    int
	axis        Axis
	sched       Scheduler
	strat       strategy

	viewport Viewport
	win      Window

	// Stability rule state: a recalculation at an unchanged scroll
	// position (a measurement-driven trigger) must not move the leading
	// edge. List-length changes invalidate the recorded position.
	lastScrollPos float32
	hasLastScroll bool

	framePending   bool
	measurePending bool
}

// New creates an engine over the given loaded items.
//
// Defaults: item size 40, overscan 3, key = index, vertical axis,
// SyncScheduler. Supplying WithTotalItems selects the proportional
// strategy; otherwise the loaded items are treated as the complete
// dataset and located by walk accumulation.
func New[T any](items []T, opts ...Option) *Engine[T] {
	o := applyOptions(opts)

	defaultSize := GetOpt(o, OptDefaultItemSize)
	if defaultSize <= 0 {
		defaultSize = OptDefaultItemSize.Default()
	}
	overscan := GetOpt(o, OptOverscan)
	if overscan < 0 {
		overscan = 0
	}

	keyFn := keyFuncOpt[T](o)
	if keyFn == nil {
		keyFn = func(_ T, index int) any { return index }
	}

	var strat strategy
	if tv := GetOpt(o, OptTotalItems); tv.Set {
		strat = proportionalStrategy{totalItems: tv.Count}
		if tv.Count < len(items) {
			// Inconsistent caller input; indices clamp silently.
			virtLogger.Debug("totalItems below loaded count",
				"totalItems", tv.Count,
				"loaded", len(items))
		}
	} else {
		strat = walkStrategy{}
	}

	e := &Engine[T]{
		items:       items,
		keyFn:       keyFn,
		cache:       NewSizeCache(),
		defaultSize: defaultSize,
		overscan:    overscan,
		axis:        GetOpt(o, OptAxis),
		sched:       GetOpt(o, OptScheduler),
		strat:       strat,
	}

	virtLogger.Debug("engine created",
		"strategy", strat.name(),
		"axis", e.axis,
		"defaultItemSize", defaultSize,
		"overscan", overscan,
		"loaded", len(items))
	return e
}

// Attach connects the engine to a viewport and runs an immediate
// recalculation. Any previously attached viewport is replaced; its
// published window is recomputed against the new one. Attaching nil is
// equivalent to Detach.
func (e *Engine[T]) Attach(vp Viewport) {
	e.viewport = vp
	e.hasLastScroll = false
	if vp == nil {
		e.win = Window{}
		return
	}
	virtLogger.Debug("viewport attached", "axis", e.axis)
	e.recalculate()
}

// Detach disconnects the viewport. The published window resets to its
// zero form and every subsequent operation is a no-op until the next
// Attach.
func (e *Engine[T]) Detach() {
	if e.viewport == nil {
		return
	}
	e.viewport = nil
	e.win = Window{}
	e.hasLastScroll = false
	virtLogger.Debug("viewport detached")
}

// OnScroll notifies the engine of a scroll event on the attached
// viewport. Recalculation is throttled to at most one per frame tick:
// a pending-flag guard absorbs event bursts regardless of rate.
func (e *Engine[T]) OnScroll() {
	if e.viewport == nil || e.framePending {
		return
	}
	e.framePending = true
	e.sched.ScheduleFrame(func() {
		e.framePending = false
		e.recalculate()
	})
}

// SetItems replaces the loaded item list and recalculates immediately.
// The leading edge may move: a length change is a real trigger, unlike
// remeasurement.
func (e *Engine[T]) SetItems(items []T) {
	e.items = items
	e.OnItemsChanged()
}

// OnItemsChanged notifies the engine that the item list was mutated in
// place (grown, shrunk, or reordered) and recalculates immediately.
func (e *Engine[T]) OnItemsChanged() {
	if p, ok := e.strat.(proportionalStrategy); ok && p.totalItems < len(e.items) {
		virtLogger.Debug("totalItems below loaded count",
			"totalItems", p.totalItems,
			"loaded", len(e.items))
	}
	// Invalidate the recorded scroll position so the leading edge may
	// move even though the scroll position did not.
	e.hasLastScroll = false
	e.recalculate()
}

// MeasureItem records the rendered size of the item with the given
// logical key. Non-positive sizes mean the item is not yet renderable
// and are ignored. A changed measurement schedules exactly one batched
// recalculation; N measurements within one synchronous block coalesce
// into a single recalculation.
func (e *Engine[T]) MeasureItem(key any, size float32) {
	if !e.cache.Measure(key, size) {
		return
	}
	if e.measurePending {
		return
	}
	e.measurePending = true
	e.sched.ScheduleMicrotask(func() {
		e.measurePending = false
		e.recalculate()
	})
}

// Window returns the most recently published window.
func (e *Engine[T]) Window() Window {
	return e.win
}

// VisibleItems returns the renderable slice [StartIndex, EndIndex] of
// the loaded items. Empty when no viewport is attached or no items are
// loaded.
func (e *Engine[T]) VisibleItems() []T {
	if len(e.items) == 0 || e.viewport == nil {
		return nil
	}
	end := e.win.EndIndex + 1
	if end > len(e.items) {
		end = len(e.items)
	}
	if e.win.StartIndex >= end {
		return nil
	}
	return e.items[e.win.StartIndex:end]
}

// Count returns the logical dataset size: the configured total item
// count under the proportional strategy, the loaded count otherwise.
func (e *Engine[T]) Count() int {
	return e.strat.count(len(e.items))
}

// Loaded returns the number of loaded items.
func (e *Engine[T]) Loaded() int {
	return len(e.items)
}

// Key returns the logical key of the loaded item at index, or nil when
// out of range.
func (e *Engine[T]) Key(index int) any {
	if index < 0 || index >= len(e.items) {
		return nil
	}
	return e.keyFn(e.items[index], index)
}

// Cache returns the engine's size cache. Exposed for hosts that need
// Evict/Clear for bounded-memory key churn; the engine itself never
// evicts.
func (e *Engine[T]) Cache() *SizeCache {
	return e.cache
}

// sizeOf returns the measured-else-default size of a loaded index.
func (e *Engine[T]) sizeOf(index int) float32 {
	if size, ok := e.cache.Get(e.keyFn(e.items[index], index)); ok {
		return size
	}
	return e.defaultSize
}

// input assembles the strategy inputs from the current viewport state.
func (e *Engine[T]) input() clipInput {
	in := clipInput{
		defaultSize: e.defaultSize,
		overscan:    e.overscan,
		loaded:      len(e.items),
		sizeOf:      e.sizeOf,
	}
	if e.viewport != nil {
		in.scrollPos = maxf(0, e.viewport.ScrollPos(e.axis))
		in.clientSize = e.viewport.ClientSize(e.axis)
	}
	return in
}

// recalculate recomputes and publishes the window synchronously.
func (e *Engine[T]) recalculate() {
	if e.viewport == nil {
		e.win = Window{}
		return
	}

	in := e.input()
	win := e.strat.computeWindow(in)

	if e.hasLastScroll && in.scrollPos == e.lastScrollPos {
		// Unchanged scroll position: a measurement-driven trigger.
		// Freeze the leading edge so variable measured sizes cannot
		// oscillate the start index; only the trailing fields refresh.
		win.StartIndex = e.win.StartIndex
		win.StartOffset = e.win.StartOffset
		if win.EndIndex < win.StartIndex {
			win.EndIndex = win.StartIndex
		}
	}

	e.lastScrollPos = in.scrollPos
	e.hasLastScroll = true
	e.win = win
}
