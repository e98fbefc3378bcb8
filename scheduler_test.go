package virtlist_test

import (
	"testing"

	"github.com/go-theft-auto/virtlist"
)

func TestFrameSchedulerOrdering(t *testing.T) {
	sched := virtlist.NewFrameScheduler()
	var order []string

	sched.ScheduleFrame(func() { order = append(order, "frame") })
	sched.ScheduleMicrotask(func() { order = append(order, "micro") })
	sched.Tick()

	if len(order) != 2 || order[0] != "micro" || order[1] != "frame" {
		t.Errorf("order = %v, want microtasks before frame callbacks", order)
	}
}

func TestFrameSchedulerMicrotaskChaining(t *testing.T) {
	// A microtask scheduled by another microtask runs in the same tick.
	sched := virtlist.NewFrameScheduler()
	ran := false

	sched.ScheduleMicrotask(func() {
		sched.ScheduleMicrotask(func() { ran = true })
	})
	sched.Tick()

	if !ran {
		t.Error("chained microtask should run within the same tick")
	}
}

func TestFrameSchedulerDefersFrameDuringTick(t *testing.T) {
	// A frame callback scheduled during a tick waits for the next one.
	sched := virtlist.NewFrameScheduler()
	runs := 0

	sched.ScheduleFrame(func() {
		runs++
		sched.ScheduleFrame(func() { runs++ })
	})

	sched.Tick()
	if runs != 1 {
		t.Errorf("runs = %d after first tick, want 1", runs)
	}
	if !sched.Pending() {
		t.Error("rescheduled frame callback should be pending")
	}

	sched.Tick()
	if runs != 2 {
		t.Errorf("runs = %d after second tick, want 2", runs)
	}
}

func TestSyncSchedulerRunsImmediately(t *testing.T) {
	var sched virtlist.SyncScheduler
	ran := 0

	sched.ScheduleFrame(func() { ran++ })
	sched.ScheduleMicrotask(func() { ran++ })

	if ran != 2 {
		t.Errorf("ran = %d, want 2 immediate executions", ran)
	}
}
