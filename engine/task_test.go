package engine

import (
	"testing"
	"time"
)

func TestTaskListOneShot(t *testing.T) {
	l := NewTaskList()
	fired := 0
	task := l.After(100*time.Millisecond, func() { fired++ })

	l.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early")
	}
	l.Advance(time.Millisecond)
	l.Advance(time.Second)

	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if !task.Cancelled() {
		t.Fatal("one-shot task should be spent after firing")
	}
	if l.Len() != 0 {
		t.Fatalf("len = %d, want 0", l.Len())
	}
}

func TestTaskListEveryCatchesUp(t *testing.T) {
	l := NewTaskList()
	fired := 0
	l.Every(10*time.Millisecond, func() { fired++ })

	l.Advance(35 * time.Millisecond)
	if fired != 3 {
		t.Fatalf("fired = %d, want 3", fired)
	}
	l.Advance(5 * time.Millisecond)
	if fired != 4 {
		t.Fatalf("fired = %d, want 4", fired)
	}
}

func TestTaskListDeadlineOrder(t *testing.T) {
	l := NewTaskList()
	var order []string
	l.After(30*time.Millisecond, func() { order = append(order, "c") })
	l.After(10*time.Millisecond, func() { order = append(order, "a") })
	l.After(10*time.Millisecond, func() { order = append(order, "b") })

	l.Advance(time.Second)

	want := []string{"a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTaskListCancel(t *testing.T) {
	l := NewTaskList()
	fired := 0
	task := l.Every(10*time.Millisecond, func() { fired++ })

	l.Advance(10 * time.Millisecond)
	task.Cancel()
	l.Advance(time.Second)

	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestTaskListCancelAllFromCallback(t *testing.T) {
	l := NewTaskList()
	fired := 0
	l.After(10*time.Millisecond, func() {
		fired++
		l.CancelAll()
	})
	l.After(20*time.Millisecond, func() { fired++ })

	l.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestTaskListRejectsZeroInterval(t *testing.T) {
	l := NewTaskList()
	task := l.Every(0, func() { t.Fatal("zero interval task fired") })
	l.Advance(time.Second)
	if !task.Cancelled() || l.Len() != 0 {
		t.Fatal("zero interval task should be rejected")
	}
}

func TestTaskListPending(t *testing.T) {
	l := NewTaskList()
	l.After(50*time.Millisecond, func() {})
	l.After(20*time.Millisecond, func() {})
	l.Advance(10 * time.Millisecond)

	p := l.Pending()
	if len(p) != 2 || p[0] != 10*time.Millisecond || p[1] != 40*time.Millisecond {
		t.Fatalf("pending = %v", p)
	}
}
