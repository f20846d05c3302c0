package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerStartStop(t *testing.T) {
	var w syncBuffer
	s := newSpinnerTo(context.Background(), &w, "Searching")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(w.String(), "Searching") {
		t.Errorf("spinner output missing message: %q", w.String())
	}
	// Second stop must not block or panic.
	s.Stop()
}

func TestSpinnerStopBeforeStart(t *testing.T) {
	var w syncBuffer
	s := newSpinnerTo(context.Background(), &w, "x")

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop before Start should not hang")
	}
}

func TestSpinnerParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var w syncBuffer
	s := newSpinnerTo(ctx, &w, "Fetching")
	s.Start()

	cancel()
	s.Stop()

	if !s.Cancelled() {
		t.Error("Cancelled() should report parent cancellation")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	var w syncBuffer
	s := newSpinnerTo(context.Background(), &w, "first")
	s.Start()
	s.SetMessage("second")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(w.String(), "second") {
		t.Errorf("updated message not rendered: %q", w.String())
	}
}
