// Package virtlist provides scroll windowing for virtualized lists.
// It computes which slice of a large ordered list is visible in a
// scrollable viewport, without owning the viewport or rendering anything.
package virtlist

// Axis selects which physical scroll/size properties a Viewport reports.
// The windowing arithmetic itself is axis-agnostic.
type Axis int

const (
	// AxisVertical reads vertical scroll position and client height.
	AxisVertical Axis = iota
	// AxisHorizontal reads horizontal scroll position and client width.
	AxisHorizontal
)

// String returns the axis name for logging.
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Window describes the currently renderable slice of the list.
// It is recomputed on every scroll tick, list-length change, and
// batched size measurement.
type Window struct {
	StartIndex int // First renderable item index (inclusive)
	EndIndex   int // Last renderable item index (inclusive)

	// StartOffset is the absolute leading-edge position of StartIndex
	// within the full content extent, in pixels.
	StartOffset float32

	// TotalSize is the full content extent used for scrollbar sizing.
	TotalSize float32

	// PlaceholdersAfter counts virtual slots inside the computed window
	// that fall beyond the last loaded item. The host renders that many
	// placeholder rows after the real items.
	PlaceholdersAfter int
}

// Count returns the number of renderable items in the window.
// Zero when the window is empty.
func (w Window) Count() int {
	if w.EndIndex < w.StartIndex {
		return 0
	}
	return w.EndIndex - w.StartIndex + 1
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// clampi clamps an int value to a range.
func clampi(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
