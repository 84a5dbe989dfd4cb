package qualify

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the default debounce duration for reloads.
const DefaultDebounce = 100 * time.Millisecond

// Builder turns raw data emitted by a Watcher into a qualifier.
type Builder[T any] func(ctx context.Context, raw []byte) (Qualifier[T], error)

// Reloadable is a qualifier whose rule is rebuilt whenever its Watcher
// emits new data.
//
// Until a build succeeds every value is disqualified. A failed rebuild
// leaves the previous qualifier in place and moves the Reloadable to
// StateDegraded. Each call to Qualify reads the current qualifier once, so
// an evaluation never mixes two rules; composites holding a Reloadable see
// the new rule from their next evaluation on.
type Reloadable[T any] struct {
	chain[T]
	watcher  Watcher
	build    Builder[T]
	debounce time.Duration
	syncMode bool
	clock    clockz.Clock
	metrics  MetricsProvider
	onStop   func(State)

	state        atomic.Int32
	current      atomic.Pointer[Qualifier[T]]
	lastError    atomic.Pointer[error]
	errorHistory *errorRing

	mu      sync.Mutex
	started bool

	// For sync mode: channel to receive changes
	changes <-chan []byte
}

// NewReloadable creates a Reloadable that rebuilds its qualifier with build
// each time watcher emits.
//
// Example:
//
//	blocked := qualify.NewReloadable[string](
//	    qualify.NewFileWatcher("/etc/app/blocked.txt"),
//	    func(_ context.Context, raw []byte) (qualify.Qualifier[string], error) {
//	        return qualify.In(strings.Fields(string(raw))...), nil
//	    },
//	)
//	if err := blocked.Start(ctx); err != nil {
//	    return err
//	}
//	allowed := blocked.Negate()
func NewReloadable[T any](watcher Watcher, build Builder[T]) *Reloadable[T] {
	r := &Reloadable[T]{
		watcher:  watcher,
		build:    build,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
	}
	r.chain = chain[T]{self: r}
	r.state.Store(int32(StateLoading))
	return r
}

// AllowList creates a Reloadable that decodes its members with decode and
// qualifies the listed values.
//
//	users := qualify.AllowList(qualify.NewFileWatcher("allow.yaml"), qualify.YAMLMembers[string]())
func AllowList[T comparable](watcher Watcher, decode Members[T]) *Reloadable[T] {
	return NewReloadable[T](watcher, func(_ context.Context, raw []byte) (Qualifier[T], error) {
		members, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode allow-list: %w", err)
		}
		return In(members...), nil
	})
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Debounce sets the debounce duration for rebuilds.
// Changes arriving within this duration are coalesced into a single rebuild.
// Default: 100ms. Must be called before Start().
func (r *Reloadable[T]) Debounce(d time.Duration) *Reloadable[T] {
	r.debounce = d
	return r
}

// SyncMode enables synchronous processing for testing.
// In sync mode, Start only builds the initial value and later changes are
// built through Process. Must be called before Start().
func (r *Reloadable[T]) SyncMode() *Reloadable[T] {
	r.syncMode = true
	return r
}

// Clock sets a custom clock for debouncing and timing.
// Must be called before Start().
func (r *Reloadable[T]) Clock(clock clockz.Clock) *Reloadable[T] {
	r.clock = clock
	return r
}

// Metrics sets a metrics provider for state changes and rebuilds.
// Must be called before Start().
func (r *Reloadable[T]) Metrics(provider MetricsProvider) *Reloadable[T] {
	r.metrics = provider
	return r
}

// OnStop sets a callback invoked with the final state when watching stops.
// Must be called before Start().
func (r *Reloadable[T]) OnStop(fn func(State)) *Reloadable[T] {
	r.onStop = fn
	return r
}

// ErrorHistorySize sets the number of recent build errors to retain.
// Use 0 (default) to only retain the most recent error via LastError().
// Must be called before Start().
func (r *Reloadable[T]) ErrorHistorySize(n int) *Reloadable[T] {
	r.errorHistory = newErrorRing(n)
	return r
}

// State returns the current state.
func (r *Reloadable[T]) State() State {
	return State(r.state.Load())
}

// LastError returns the error of the most recent failed build, or nil if
// the most recent build succeeded.
func (r *Reloadable[T]) LastError() error {
	ptr := r.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// ErrorHistory returns the recent build errors, oldest first.
// Returns nil if error history is not enabled (see ErrorHistorySize).
func (r *Reloadable[T]) ErrorHistory() []error {
	return r.errorHistory.all()
}

// Qualify evaluates v against the current qualifier.
// It returns false while no build has succeeded.
func (r *Reloadable[T]) Qualify(v T) bool {
	ptr := r.current.Load()
	if ptr == nil {
		return false
	}
	return (*ptr).Qualify(v)
}

// Start begins watching. It blocks until the watcher emits its initial
// value, builds it, and returns the build error if any. A failed initial
// build does not stop watching.
//
// Start can only be called once. Subsequent calls return an error.
func (r *Reloadable[T]) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return fmt.Errorf("reloadable already started")
	}
	r.started = true
	r.mu.Unlock()

	capitan.Emit(ctx, ReloadStarted,
		KeyWatcherType.Field(fmt.Sprintf("%T", r.watcher)),
	)

	changes, err := r.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	var initialErr error
	select {
	case <-ctx.Done():
		return ctx.Err()
	case raw, ok := <-changes:
		if !ok {
			return fmt.Errorf("watcher closed before emitting initial value")
		}
		r.received(ctx)
		initialErr = r.process(ctx, raw)
	}

	if r.syncMode {
		r.changes = changes
		return initialErr
	}

	go r.watch(ctx, changes)

	return initialErr
}

// Process reads and builds the next value from the watcher.
// This is only available in sync mode and is used for deterministic testing.
// Returns false if no value is available or the channel is closed.
func (r *Reloadable[T]) Process(ctx context.Context) bool {
	if !r.syncMode {
		return false
	}

	select {
	case raw, ok := <-r.changes:
		if !ok {
			return false
		}
		r.received(ctx)
		_ = r.process(ctx, raw) //nolint:errcheck // Errors stored via setError
		return true
	default:
		return false
	}
}

func (r *Reloadable[T]) received(ctx context.Context) {
	capitan.Emit(ctx, ReloadChangeReceived)
	if r.metrics != nil {
		r.metrics.OnChangeReceived()
	}
}

// process builds a qualifier from raw and swaps it in on success.
func (r *Reloadable[T]) process(ctx context.Context, raw []byte) error {
	start := r.clock.Now()
	oldState := r.State()

	q, err := r.build(ctx, raw)
	if err == nil && q == nil {
		err = fmt.Errorf("builder returned a nil qualifier")
	}
	if err != nil {
		r.setError(err)
		r.transitionState(ctx, oldState, r.failureState())
		capitan.Emit(ctx, ReloadBuildFailed,
			KeyError.Field(err.Error()),
		)
		if r.metrics != nil {
			r.metrics.OnReloadFailure("build", r.clock.Since(start))
		}
		return fmt.Errorf("build failed: %w", err)
	}

	r.current.Store(&q)
	r.lastError.Store(nil)
	r.transitionState(ctx, oldState, StateHealthy)

	elapsed := r.clock.Since(start)
	if s, ok := q.(interface{ Len() int }); ok {
		capitan.Emit(ctx, ReloadApplied,
			KeyDuration.Field(elapsed),
			KeySize.Field(s.Len()),
		)
	} else {
		capitan.Emit(ctx, ReloadApplied,
			KeyDuration.Field(elapsed),
		)
	}
	if r.metrics != nil {
		r.metrics.OnReloadSuccess(elapsed)
	}

	return nil
}

// failureState returns StateEmpty until a build has succeeded, and
// StateDegraded afterwards.
func (r *Reloadable[T]) failureState() State {
	if r.current.Load() == nil {
		return StateEmpty
	}
	return StateDegraded
}

// transitionState updates the state and emits a state change event if changed.
func (r *Reloadable[T]) transitionState(ctx context.Context, oldState, newState State) {
	if oldState == newState {
		return
	}
	r.state.Store(int32(newState))
	capitan.Emit(ctx, ReloadStateChanged,
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
	if r.metrics != nil {
		r.metrics.OnStateChange(oldState, newState)
	}
}

// setError stores an error atomically and adds it to the error history.
func (r *Reloadable[T]) setError(err error) {
	e := err
	r.lastError.Store(&e)
	r.errorHistory.push(err)
}

// watch builds changes from the watcher channel with debouncing.
func (r *Reloadable[T]) watch(ctx context.Context, changes <-chan []byte) {
	defer func() {
		finalState := r.State()
		capitan.Emit(ctx, ReloadStopped,
			KeyState.Field(finalState.String()),
		)
		if r.onStop != nil {
			r.onStop(finalState)
		}
	}()

	var (
		timer      clockz.Timer
		pending    []byte
		hasPending bool
	)

	for {
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case raw, ok := <-changes:
			if !ok {
				if hasPending {
					_ = r.process(ctx, pending) //nolint:errcheck // Errors stored via setError
				}
				return
			}

			r.received(ctx)
			pending = raw
			hasPending = true

			if timer == nil {
				timer = r.clock.NewTimer(r.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(r.debounce)
			}

		case <-timerC:
			if hasPending {
				_ = r.process(ctx, pending) //nolint:errcheck // Errors stored via setError
				hasPending = false
			}
		}
	}
}
