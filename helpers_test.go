package virtlist_test

import (
	"github.com/go-theft-auto/virtlist"
)

// fakeViewport is a test double for the host's scrollable element.
// Scroll position and client size are set directly by tests.
type fakeViewport struct {
	scroll [2]float32
	client [2]float32
}

func newFakeViewport(clientSize float32) *fakeViewport {
	vp := &fakeViewport{}
	vp.client[virtlist.AxisVertical] = clientSize
	vp.client[virtlist.AxisHorizontal] = clientSize
	return vp
}

func (v *fakeViewport) ScrollPos(axis virtlist.Axis) float32 {
	return v.scroll[axis]
}

func (v *fakeViewport) ClientSize(axis virtlist.Axis) float32 {
	return v.client[axis]
}

func (v *fakeViewport) SetScrollPos(axis virtlist.Axis, pos float32) {
	v.scroll[axis] = pos
}

// countingScheduler wraps a FrameScheduler and counts how often the
// engine actually schedules work, to verify trigger coalescing.
type countingScheduler struct {
	inner      *virtlist.FrameScheduler
	frameCalls int
	microCalls int
}

func newCountingScheduler() *countingScheduler {
	return &countingScheduler{inner: virtlist.NewFrameScheduler()}
}

func (s *countingScheduler) ScheduleFrame(fn func()) {
	s.frameCalls++
	s.inner.ScheduleFrame(fn)
}

func (s *countingScheduler) ScheduleMicrotask(fn func()) {
	s.microCalls++
	s.inner.ScheduleMicrotask(fn)
}

func (s *countingScheduler) Tick() {
	s.inner.Tick()
}

// intItems returns [0, 1, ..., n-1] as list items.
func intItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}
