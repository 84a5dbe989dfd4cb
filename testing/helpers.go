// Package testing provides test utilities for code built on qualify.
package testing

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/qualify"
)

// Counter wraps a qualifier and counts how often it is evaluated.
// Use it to assert that short-circuiting skipped a branch.
type Counter[T any] struct {
	inner qualify.Qualifier[T]
	calls atomic.Int64
}

// Count wraps q in a Counter.
func Count[T any](q qualify.Qualifier[T]) *Counter[T] {
	return &Counter[T]{inner: q}
}

// Qualify evaluates the wrapped qualifier and records the call.
func (c *Counter[T]) Qualify(v T) bool {
	c.calls.Add(1)
	return c.inner.Qualify(v)
}

// Calls returns the number of evaluations so far.
func (c *Counter[T]) Calls() int {
	return int(c.calls.Load())
}

// Recorder collects entry and exit markers from async qualifiers, in the
// order they happen.
type Recorder struct {
	mu     sync.Mutex
	events []string
}

// Wrap returns an async qualifier that records "name:enter" before and
// "name:exit" after evaluating q.
func Wrap[T any](r *Recorder, name string, q qualify.AsyncQualifier[T]) qualify.AsyncFunc[T] {
	return func(ctx context.Context, v T) (bool, error) {
		r.Mark(name + ":enter")
		defer r.Mark(name + ":exit")
		return q.QualifyContext(ctx, v)
	}
}

// Mark appends a marker.
func (r *Recorder) Mark(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded markers.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// RequireEvents fails the test immediately if the recorded markers differ
// from want.
func (r *Recorder) RequireEvents(t *testing.T, want ...string) {
	t.Helper()
	if got := r.Events(); !slices.Equal(got, want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
}

// Blocking returns an async qualifier that blocks until ctx is done and
// then reports its error, wrapped as a cancellation. The entered channel is
// closed once evaluation has begun.
func Blocking[T any]() (q qualify.AsyncFunc[T], entered <-chan struct{}) {
	ch := make(chan struct{})
	var once sync.Once
	q = func(ctx context.Context, _ T) (bool, error) {
		once.Do(func() { close(ch) })
		<-ctx.Done()
		return false, fmt.Errorf("%w: %w", qualify.ErrCanceled, ctx.Err())
	}
	return q, ch
}

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// WaitForState waits until r reaches the expected state or timeout occurs.
func WaitForState[T any](t *testing.T, r *qualify.Reloadable[T], expected qualify.State, timeout time.Duration) bool {
	t.Helper()
	return WaitFor(t, timeout, func() bool {
		return r.State() == expected
	})
}

// NewTestAllowList creates a string AllowList in sync mode, fed by a channel.
// Returns the allow-list and a channel for sending JSON member lists.
func NewTestAllowList(t *testing.T) (*qualify.Reloadable[string], chan<- []byte) {
	t.Helper()
	ch := make(chan []byte, 10)
	r := qualify.AllowList[string](qualify.Channel(ch), qualify.JSONMembers[string]()).SyncMode()
	return r, ch
}
