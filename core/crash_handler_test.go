package core

import (
	"os"
	"testing"
	"time"
)

func TestGoRecoversPanicAndRunsCleanup(t *testing.T) {
	cleaned := make(chan struct{}, 1)
	exited := make(chan int, 1)

	SetCrashCleanup(func() { cleaned <- struct{}{} })
	exitFunc = func(code int) { exited <- code }
	t.Cleanup(func() {
		SetCrashCleanup(nil)
		exitFunc = os.Exit
	})

	Go(func() { panic("boom") })

	select {
	case code := <-exited:
		if code != 1 {
			t.Fatalf("exit code = %d, want 1", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("crash handler did not run")
	}

	select {
	case <-cleaned:
	default:
		t.Fatal("cleanup not invoked")
	}
}

func TestHandleCrashNil(t *testing.T) {
	// Nil recover value is a no-op
	HandleCrash(nil)
}
