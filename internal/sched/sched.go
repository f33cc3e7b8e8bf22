// Package sched implements a single-threaded virtual-time task scheduler.
//
// All game work runs as callbacks registered against one time-ordered queue,
// never as goroutines. Callbacks fire in deadline order; ties are broken by
// registration order. Cancellation is synchronous: a cancelled task never
// fires, even if it was already due.
package sched

import (
	"container/heap"
	"time"
)

// Handle identifies a pending task. The zero Handle is invalid.
type Handle struct {
	id uint64
}

// Valid reports whether the handle was issued by a scheduler.
func (h Handle) Valid() bool {
	return h.id != 0
}

type task struct {
	id    uint64
	at    time.Time
	seq   uint64
	fn    func()
	index int // heap index
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if !h[i].at.Equal(h[j].at) {
		return h[i].at.Before(h[j].at)
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler owns the task queue and the virtual clock.
type Scheduler struct {
	now     time.Time
	queue   taskHeap
	pending map[uint64]*task
	nextID  uint64
	nextSeq uint64
}

// New returns a scheduler whose clock starts at now.
func New(now time.Time) *Scheduler {
	return &Scheduler{
		now:     now,
		pending: map[uint64]*task{},
	}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After registers fn to run once d has elapsed. Negative delays are
// clamped to zero.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	s.nextID++
	s.nextSeq++
	t := &task{
		id:  s.nextID,
		at:  s.now.Add(d),
		seq: s.nextSeq,
		fn:  fn,
	}
	heap.Push(&s.queue, t)
	s.pending[t.id] = t
	return Handle{id: t.id}
}

// Cancel removes a pending task. Unknown or already-fired handles are
// ignored.
func (s *Scheduler) Cancel(h Handle) {
	t, ok := s.pending[h.id]
	if !ok {
		return
	}
	delete(s.pending, h.id)
	heap.Remove(&s.queue, t.index)
}

// Advance moves the clock forward by d, running every task that comes due,
// in order. Tasks scheduled by callbacks run in the same call if they fall
// within the window.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	s.AdvanceTo(s.now.Add(d))
}

// AdvanceTo moves the clock to t, running every task due at or before t.
// Moving backwards is ignored.
func (s *Scheduler) AdvanceTo(target time.Time) {
	if target.Before(s.now) {
		return
	}
	for len(s.queue) > 0 && !s.queue[0].at.After(target) {
		t := heap.Pop(&s.queue).(*task)
		delete(s.pending, t.id)
		if t.at.After(s.now) {
			s.now = t.at
		}
		t.fn()
	}
	s.now = target
}

// Slot holds at most one live handle for a single timer concern. Arming a
// slot cancels the previous occupant, which makes double-scheduling
// impossible for that concern.
type Slot struct {
	s *Scheduler
	h Handle
}

// NewSlot returns a slot bound to s.
func NewSlot(s *Scheduler) Slot {
	return Slot{s: s}
}

// Arm schedules fn after d, replacing any pending task in this slot. The
// slot clears itself before fn runs, so fn may re-arm it.
func (sl *Slot) Arm(d time.Duration, fn func()) {
	sl.Cancel()
	var h Handle
	h = sl.s.After(d, func() {
		if sl.h == h {
			sl.h = Handle{}
		}
		fn()
	})
	sl.h = h
}

// Cancel removes the pending task, if any.
func (sl *Slot) Cancel() {
	if sl.h.Valid() {
		sl.s.Cancel(sl.h)
		sl.h = Handle{}
	}
}

// Armed reports whether the slot holds a pending task.
func (sl *Slot) Armed() bool {
	return sl.h.Valid()
}
