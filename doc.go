/*
Package virtlist computes scroll windows for virtualized lists: given a
large ordered list and a scrollable viewport, it determines the slice of
items worth rendering, the leading-edge offset to place it at, and the
total content extent for scrollbar sizing. It renders nothing and owns
no scrollable element — both belong to the host.

# Quick Start

	// Host drives the engine from its UI loop.
	sched := virtlist.NewFrameScheduler()
	eng := virtlist.New(rows,
	    virtlist.WithDefaultItemSize(24),
	    virtlist.WithOverscan(4),
	    virtlist.WithScheduler(sched),
	)
	eng.Attach(viewport) // viewport implements virtlist.Viewport

	for running {
	    pollInput()   // host calls eng.OnScroll() on scroll events
	    sched.Tick()  // coalesced recalculations run here

	    win := eng.Window()
	    y := win.StartOffset - viewport.ScrollPos(virtlist.AxisVertical)
	    for i, item := range eng.VisibleItems() {
	        h := drawRow(item, y)
	        eng.MeasureItem(eng.Key(win.StartIndex+i), h)
	        y += h
	    }
	}

# Windowing Strategies

The engine picks one of two strategies at construction:

Proportional (WithTotalItems supplied): scroll position maps directly to
an item index through the uniform default item size. The total extent is
totalItems * defaultItemSize and never moves as individual items are
measured, so the scrollbar stays stable while a partially loaded dataset
streams in. Window slots beyond the loaded tail are reported as
PlaceholdersAfter for the host to render as loading rows.

Walk (no total supplied): the loaded list is the complete dataset, and
the window is found by accumulating measured-else-default sizes from
index 0. The total extent is the exact sum, so the scrollbar tracks real
content.

# Measurement and Stability

Hosts report rendered sizes through MeasureItem, keyed by a logical key
(WithKeyFunc) so a reordered item keeps its size. Measurements at a
fixed scroll position never move StartIndex or StartOffset — only
EndIndex, TotalSize, and PlaceholdersAfter refresh. The leading edge
moves only on an actual scroll or an actual list-length change, which
prevents index oscillation when measured sizes disagree with the
default.

# Scheduling

Recalculation triggers are coalesced through an injected Scheduler:
scroll events collapse to one recalculation per frame tick, and a burst
of measurements collapses to one microtask recalculation. SyncScheduler
(the default) runs everything immediately; FrameScheduler defers work to
an explicit Tick inside the host's render loop.

# Failure Semantics

There are no error returns in normal operation. A nil or detached
viewport makes reads return the zero Window and writes return silently;
non-positive measurements are ignored; out-of-range indices clamp.

See backend/glfw for a GLFW-backed Viewport and example/ for a runnable
demo.
*/
package virtlist
