package testing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zoobzio/qualify"
)

var isEven = qualify.Func[int](func(n int) bool { return n%2 == 0 })

func TestCounter(t *testing.T) {
	never := qualify.Func[int](func(int) bool { return false })
	c := Count[int](isEven)

	q := qualify.And[int](never, c)
	for i := 0; i < 5; i++ {
		q.Qualify(i)
	}
	if c.Calls() != 0 {
		t.Errorf("expected right side skipped, got %d calls", c.Calls())
	}

	if !c.Qualify(2) || c.Calls() != 1 {
		t.Errorf("expected one qualifying call, got %d", c.Calls())
	}
}

func TestRecorder_Sequential(t *testing.T) {
	rec := &Recorder{}
	always := qualify.Lift[int](qualify.Func[int](func(int) bool { return true }))

	q := qualify.AndAsync[int](Wrap[int](rec, "a", always), Wrap[int](rec, "b", always))
	ok, err := q.QualifyContext(context.Background(), 1)
	if err != nil || !ok {
		t.Fatalf("QualifyContext() = %v, %v", ok, err)
	}

	rec.RequireEvents(t, "a:enter", "a:exit", "b:enter", "b:exit")
}

func TestRecorder_EventsCopy(t *testing.T) {
	rec := &Recorder{}
	rec.Mark("x")
	events := rec.Events()
	events[0] = "y"
	if rec.Events()[0] != "x" {
		t.Error("expected Events to return a copy")
	}
}

func TestBlocking(t *testing.T) {
	q, entered := Blocking[int]()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := q.QualifyContext(ctx, 1)
		done <- err
	}()

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for evaluation to begin")
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, qualify.ErrCanceled) || !errors.Is(err, context.Canceled) {
			t.Errorf("expected cancellation error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for evaluation to end")
	}
}

func TestWaitFor(t *testing.T) {
	t.Run("condition met immediately", func(t *testing.T) {
		if !WaitFor(t, 100*time.Millisecond, func() bool { return true }) {
			t.Error("expected WaitFor to return true")
		}
	})

	t.Run("condition never met", func(t *testing.T) {
		if WaitFor(t, 50*time.Millisecond, func() bool { return false }) {
			t.Error("expected WaitFor to return false")
		}
	})
}

func TestNewTestAllowList(t *testing.T) {
	list, ch := NewTestAllowList(t)
	ch <- []byte(`["alice"]`)

	ctx := context.Background()
	if err := list.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !WaitForState(t, list, qualify.StateHealthy, 100*time.Millisecond) {
		t.Fatalf("expected healthy, got %s", list.State())
	}
	if !list.Qualify("alice") || list.Qualify("bob") {
		t.Error("unexpected membership after initial build")
	}

	ch <- []byte(`["bob"]`)
	if !list.Process(ctx) {
		t.Fatal("expected Process to consume a change")
	}
	if list.Qualify("alice") || !list.Qualify("bob") {
		t.Error("unexpected membership after rebuild")
	}
}
