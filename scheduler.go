package virtlist

// Scheduler defers recalculation work so bursts of triggers coalesce.
// The engine schedules at most one frame callback and one microtask
// callback at a time; the scheduler only decides when they run.
//
// Hosts with an animation loop use a FrameScheduler and call Tick once
// per frame. Hosts without one use SyncScheduler, which runs callbacks
// immediately.
type Scheduler interface {
	// ScheduleFrame queues fn to run on the next frame tick.
	// Used for scroll-driven recalculation.
	ScheduleFrame(fn func())

	// ScheduleMicrotask queues fn to run before the next frame tick.
	// Used for measurement-driven recalculation.
	ScheduleMicrotask(fn func())
}

// SyncScheduler runs every callback immediately on the calling
// goroutine. Scroll throttling and measurement batching degrade to
// per-trigger recalculation, which is correct but does no coalescing.
type SyncScheduler struct{}

// ScheduleFrame runs fn immediately.
func (SyncScheduler) ScheduleFrame(fn func()) { fn() }

// ScheduleMicrotask runs fn immediately.
func (SyncScheduler) ScheduleMicrotask(fn func()) { fn() }

// FrameScheduler queues callbacks until the host drives a frame tick.
// It is the scheduler to use inside a render loop:
//
//	sched := virtlist.NewFrameScheduler()
//	eng := virtlist.New(items, virtlist.WithScheduler(sched))
//	for !window.ShouldClose() {
//	    glfw.PollEvents()
//	    sched.Tick() // run coalesced recalculations
//	    draw(eng.Window())
//	}
//
// FrameScheduler is not safe for concurrent use; the engine's
// single-threaded model (one UI goroutine) applies to it as well.
type FrameScheduler struct {
	frame []func()
	micro []func()
}

// NewFrameScheduler creates an empty frame scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// ScheduleFrame queues fn for the next Tick.
func (s *FrameScheduler) ScheduleFrame(fn func()) {
	s.frame = append(s.frame, fn)
}

// ScheduleMicrotask queues fn to run at the start of the next Tick,
// before any frame callbacks.
func (s *FrameScheduler) ScheduleMicrotask(fn func()) {
	s.micro = append(s.micro, fn)
}

// Tick runs all queued microtasks, then all frame callbacks that were
// queued before the tick started. Microtasks scheduled by other
// microtasks run in the same tick; frame callbacks scheduled during the
// tick wait for the next one.
func (s *FrameScheduler) Tick() {
	for len(s.micro) > 0 {
		batch := s.micro
		s.micro = nil
		for _, fn := range batch {
			fn()
		}
	}

	frame := s.frame
	s.frame = nil
	for _, fn := range frame {
		fn()
	}
}

// Pending reports whether any callback is queued.
func (s *FrameScheduler) Pending() bool {
	return len(s.frame) > 0 || len(s.micro) > 0
}
