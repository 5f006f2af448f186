package game

import (
	"time"

	"github.com/joel-heath/JSCanvasGame/core"
)

// Task is a deferred action tied to the location it was scheduled on.
// It fires only if the player is still there; a location change before
// the deadline cancels it.
type Task struct {
	fireAt   time.Time
	location string
	fn       func()
	done     bool
}

// Scheduler runs deferred tasks on the session tick instead of
// free-running timers, so firing order is deterministic and tasks cannot
// race the frame loop.
type Scheduler struct {
	clock core.TimeProvider
	tasks []*Task
}

// NewScheduler creates a scheduler on the given clock
func NewScheduler(clock core.TimeProvider) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once d has elapsed, bound to location
func (s *Scheduler) After(d time.Duration, location string, fn func()) *Task {
	t := &Task{
		fireAt:   s.clock.Now().Add(d),
		location: location,
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Cancel drops a pending task
func (s *Scheduler) Cancel(t *Task) {
	t.done = true
}

// Pending returns the number of live tasks
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

// Tick fires due tasks and drops any whose location no longer matches.
// Call once per frame with the player's current location.
func (s *Scheduler) Tick(location string) {
	now := s.clock.Now()
	var due []*Task
	remaining := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.done:
			// dropped
		case t.location != location:
			t.done = true
		case !now.Before(t.fireAt):
			t.done = true
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.tasks = remaining

	// Fire after the filter settles so a callback calling After appends
	// to the live list instead of the slice being rebuilt
	for _, t := range due {
		t.fn()
	}
}
