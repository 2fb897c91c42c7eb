package engine

import (
	"sort"
	"time"
)

// Task is a cancellable timer owned by a TaskList
type Task struct {
	id        uint64
	due       time.Duration
	interval  time.Duration // Zero for one-shot
	fn        func()
	cancelled bool
}

// Cancel prevents any further firing, safe to call repeatedly and from inside fn
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Cancelled reports whether the task was cancelled or has fired its last time
func (t *Task) Cancelled() bool {
	return t == nil || t.cancelled
}

// TaskList holds the timers of one subsystem, advanced by simulated time
// Not thread-safe: owned by the scheduler goroutine
type TaskList struct {
	now    time.Duration
	nextID uint64
	tasks  []*Task
}

// NewTaskList creates an empty task list at time zero
func NewTaskList() *TaskList {
	return &TaskList{}
}

// After schedules fn once, delay from now
func (l *TaskList) After(delay time.Duration, fn func()) *Task {
	return l.add(delay, 0, fn)
}

// Every schedules fn repeatedly with the given interval, first firing one interval from now
// Non-positive intervals are rejected with a cancelled task
func (l *TaskList) Every(interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		return &Task{cancelled: true}
	}
	return l.add(interval, interval, fn)
}

func (l *TaskList) add(delay, interval time.Duration, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	l.nextID++
	t := &Task{id: l.nextID, due: l.now + delay, interval: interval, fn: fn}
	l.tasks = append(l.tasks, t)
	return t
}

// Advance moves time forward by dt and fires due tasks in deadline order
// A repeating task fires once per elapsed interval
func (l *TaskList) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := l.now + dt

	for {
		next := l.nextDue(target)
		if next == nil {
			break
		}
		l.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.cancelled = true
		}
		next.fn()
	}

	l.now = target
	l.compact()
}

// nextDue returns the earliest live task due at or before target, ties by creation order
func (l *TaskList) nextDue(target time.Duration) *Task {
	var best *Task
	for _, t := range l.tasks {
		if t.cancelled || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (l *TaskList) compact() {
	live := l.tasks[:0]
	for _, t := range l.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(l.tasks); i++ {
		l.tasks[i] = nil
	}
	l.tasks = live
}

// CancelAll cancels and drops every task
func (l *TaskList) CancelAll() {
	for _, t := range l.tasks {
		t.cancelled = true
	}
	l.tasks = l.tasks[:0]
}

// Reset cancels every task and rewinds time to zero
func (l *TaskList) Reset() {
	l.CancelAll()
	l.now = 0
}

// Len returns the number of live tasks
func (l *TaskList) Len() int {
	n := 0
	for _, t := range l.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Now returns the simulated time of the list
func (l *TaskList) Now() time.Duration {
	return l.now
}

// Pending returns remaining delays of live tasks in ascending order, for diagnostics
func (l *TaskList) Pending() []time.Duration {
	out := make([]time.Duration, 0, len(l.tasks))
	for _, t := range l.tasks {
		if !t.cancelled {
			out = append(out, t.due-l.now)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
