package sched

import (
	"testing"
	"time"
)

func newTestScheduler() *Scheduler {
	return New(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestAdvanceRunsTasksInDeadlineOrder(t *testing.T) {
	s := newTestScheduler()
	var got []string
	s.After(200*time.Millisecond, func() { got = append(got, "b") })
	s.After(100*time.Millisecond, func() { got = append(got, "a") })
	s.After(300*time.Millisecond, func() { got = append(got, "c") })

	s.Advance(time.Second)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestTiesBreakByRegistrationOrder(t *testing.T) {
	s := newTestScheduler()
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		s.After(50*time.Millisecond, func() { got = append(got, i) })
	}
	s.Advance(50 * time.Millisecond)
	for i, v := range got {
		if v != i {
			t.Fatalf("tie broken out of registration order: %v", got)
		}
	}
}

func TestCancelPreventsFiring(t *testing.T) {
	s := newTestScheduler()
	fired := false
	h := s.After(100*time.Millisecond, func() { fired = true })
	s.Cancel(h)
	s.Advance(time.Second)
	if fired {
		t.Fatalf("cancelled task fired")
	}
	if s.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d pending", s.Pending())
	}
}

func TestCancelUnknownHandleIsNoop(t *testing.T) {
	s := newTestScheduler()
	s.Cancel(Handle{})
	h := s.After(10*time.Millisecond, func() {})
	s.Advance(20 * time.Millisecond)
	// Already fired; cancelling again must be harmless.
	s.Cancel(h)
}

func TestCallbackMaySchedule(t *testing.T) {
	s := newTestScheduler()
	var got []string
	s.After(100*time.Millisecond, func() {
		got = append(got, "first")
		s.After(100*time.Millisecond, func() { got = append(got, "second") })
	})
	s.Advance(250 * time.Millisecond)
	if len(got) != 2 || got[1] != "second" {
		t.Fatalf("chained task did not run in the same advance: %v", got)
	}
	if want := s.Now(); want.Sub(newTestScheduler().Now()) != 250*time.Millisecond {
		t.Fatalf("clock not advanced to target: %v", want)
	}
}

func TestAdvanceSetsNowToEachDeadline(t *testing.T) {
	s := newTestScheduler()
	start := s.Now()
	var at time.Duration
	s.After(100*time.Millisecond, func() { at = s.Now().Sub(start) })
	s.Advance(time.Second)
	if at != 100*time.Millisecond {
		t.Fatalf("callback observed wrong clock: %v", at)
	}
}

func TestSlotReplacesPendingTask(t *testing.T) {
	s := newTestScheduler()
	sl := NewSlot(s)
	var got []string
	sl.Arm(100*time.Millisecond, func() { got = append(got, "old") })
	sl.Arm(200*time.Millisecond, func() { got = append(got, "new") })
	s.Advance(time.Second)
	if len(got) != 1 || got[0] != "new" {
		t.Fatalf("slot did not replace pending task: %v", got)
	}
}

func TestSlotCancel(t *testing.T) {
	s := newTestScheduler()
	sl := NewSlot(s)
	fired := false
	sl.Arm(100*time.Millisecond, func() { fired = true })
	if !sl.Armed() {
		t.Fatalf("slot should be armed")
	}
	sl.Cancel()
	if sl.Armed() {
		t.Fatalf("slot should be disarmed after cancel")
	}
	s.Advance(time.Second)
	if fired {
		t.Fatalf("cancelled slot task fired")
	}
}

func TestSlotClearsBeforeCallbackRuns(t *testing.T) {
	s := newTestScheduler()
	sl := NewSlot(s)
	rearmed := false
	sl.Arm(100*time.Millisecond, func() {
		if sl.Armed() {
			t.Fatalf("slot still armed inside its own callback")
		}
		sl.Arm(100*time.Millisecond, func() { rearmed = true })
	})
	s.Advance(time.Second)
	if !rearmed {
		t.Fatalf("re-armed slot task did not fire")
	}
}

func TestAdvanceToIgnoresPast(t *testing.T) {
	s := newTestScheduler()
	before := s.Now()
	s.AdvanceTo(before.Add(-time.Second))
	if !s.Now().Equal(before) {
		t.Fatalf("clock moved backwards")
	}
}
