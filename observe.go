package qualify

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// ObserveOption configures an observed qualifier.
type ObserveOption func(*observer)

// WithClock sets the clock used to time evaluations.
// Use this with clockz.FakeClock for deterministic durations in tests.
// Default: clockz.RealClock.
func WithClock(clock clockz.Clock) ObserveOption {
	return func(o *observer) {
		o.clock = clock
	}
}

// WithMetrics sets a metrics provider that receives a callback per evaluation.
func WithMetrics(provider MetricsProvider) ObserveOption {
	return func(o *observer) {
		o.metrics = provider
	}
}

// observer times evaluations and reports them as signals and metrics.
type observer struct {
	name    string
	clock   clockz.Clock
	metrics MetricsProvider
}

func newObserver(name string, opts []ObserveOption) observer {
	o := observer{name: name, clock: clockz.RealClock}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o observer) evaluated(ctx context.Context, qualified bool, d time.Duration) {
	signal := EvaluationRejected
	if qualified {
		signal = EvaluationPassed
	}
	capitan.Emit(ctx, signal,
		KeyQualifier.Field(o.name),
		KeyDuration.Field(d),
	)
	if o.metrics != nil {
		o.metrics.OnEvaluated(o.name, qualified, d)
	}
}

func (o observer) failed(ctx context.Context, err error, d time.Duration) {
	wasCanceled := IsCanceled(err)
	signal := EvaluationFailed
	if wasCanceled {
		signal = EvaluationCanceled
	}
	capitan.Emit(ctx, signal,
		KeyQualifier.Field(o.name),
		KeyDuration.Field(d),
		KeyError.Field(err.Error()),
	)
	if o.metrics != nil {
		o.metrics.OnFailed(o.name, wasCanceled, d)
	}
}

// Observed decorates a qualifier with evaluation signals and metrics.
// Results pass through unchanged.
type Observed[T any] struct {
	chain[T]
	observer
	inner Qualifier[T]
}

// Observe wraps q so that each evaluation emits EvaluationPassed or
// EvaluationRejected carrying the name and the time taken.
//
// Example:
//
//	capitan.Hook(qualify.EvaluationRejected, func(_ context.Context, e *capitan.Event) {
//	    name, _ := qualify.KeyQualifier.From(e)
//	    log.Printf("rejected by %s", name)
//	})
//
//	q := qualify.Observe("adult", isAdult).And(hasConsent)
func Observe[T any](name string, q Qualifier[T], opts ...ObserveOption) *Observed[T] {
	mustQualifier(q, "observe", "inner")
	o := &Observed[T]{observer: newObserver(name, opts), inner: q}
	o.chain = chain[T]{self: o}
	return o
}

// Qualify evaluates the wrapped qualifier and reports the result.
func (o *Observed[T]) Qualify(v T) bool {
	start := o.clock.Now()
	ok := o.inner.Qualify(v)
	o.evaluated(context.Background(), ok, o.clock.Now().Sub(start))
	return ok
}

// AsyncObserved decorates an async qualifier with evaluation signals and
// metrics. Results and errors pass through unchanged.
type AsyncObserved[T any] struct {
	asyncChain[T]
	observer
	inner AsyncQualifier[T]
}

// ObserveAsync wraps q like Observe. Failures emit EvaluationFailed, or
// EvaluationCanceled when the error stems from cancellation.
func ObserveAsync[T any](name string, q AsyncQualifier[T], opts ...ObserveOption) *AsyncObserved[T] {
	mustQualifier(q, "observe", "inner")
	o := &AsyncObserved[T]{observer: newObserver(name, opts), inner: q}
	o.asyncChain = asyncChain[T]{self: o}
	return o
}

// QualifyContext evaluates the wrapped qualifier and reports the outcome.
func (o *AsyncObserved[T]) QualifyContext(ctx context.Context, v T) (bool, error) {
	start := o.clock.Now()
	ok, err := o.inner.QualifyContext(ctx, v)
	elapsed := o.clock.Now().Sub(start)
	if err != nil {
		o.failed(ctx, err, elapsed)
		return false, err
	}
	o.evaluated(ctx, ok, elapsed)
	return ok, nil
}
