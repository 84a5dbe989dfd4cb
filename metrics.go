package qualify

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks from observed qualifiers and
// reloadable qualifiers.
type MetricsProvider interface {
	// OnEvaluated is called when an observed qualifier produces a result.
	OnEvaluated(name string, qualified bool, duration time.Duration)

	// OnFailed is called when an observed async qualifier returns an error.
	// canceled reports whether the error stems from cancellation.
	OnFailed(name string, canceled bool, duration time.Duration)

	// OnStateChange is called when a Reloadable transitions between states.
	OnStateChange(from, to State)

	// OnReloadSuccess is called when a Reloadable swaps in a rebuilt qualifier.
	OnReloadSuccess(duration time.Duration)

	// OnReloadFailure is called when a rebuild fails.
	// Stage is "build" for failures of the build function.
	OnReloadFailure(stage string, duration time.Duration)

	// OnChangeReceived is called when raw data is received from the watcher.
	OnChangeReceived()
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnEvaluated(_ string, _ bool, _ time.Duration) {}
func (NoOpMetricsProvider) OnFailed(_ string, _ bool, _ time.Duration)    {}
func (NoOpMetricsProvider) OnStateChange(_, _ State)                      {}
func (NoOpMetricsProvider) OnReloadSuccess(_ time.Duration)               {}
func (NoOpMetricsProvider) OnReloadFailure(_ string, _ time.Duration)     {}
func (NoOpMetricsProvider) OnChangeReceived()                             {}
