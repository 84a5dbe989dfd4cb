package qualify

import "github.com/zoobzio/capitan"

// Evaluation signals, emitted by Observed and AsyncObserved.
var (
	// EvaluationPassed is emitted when an observed qualifier returns true.
	EvaluationPassed = capitan.NewSignal(
		"qualify.evaluation.passed",
		"Value qualified",
	)

	// EvaluationRejected is emitted when an observed qualifier returns false.
	EvaluationRejected = capitan.NewSignal(
		"qualify.evaluation.rejected",
		"Value did not qualify",
	)

	// EvaluationFailed is emitted when an observed async qualifier fails.
	EvaluationFailed = capitan.NewSignal(
		"qualify.evaluation.failed",
		"Evaluation failed",
	)

	// EvaluationCanceled is emitted when an observed async qualifier is canceled.
	EvaluationCanceled = capitan.NewSignal(
		"qualify.evaluation.canceled",
		"Evaluation canceled",
	)
)

// Reload signals, emitted by Reloadable.
var (
	// ReloadStarted is emitted when a Reloadable begins watching.
	ReloadStarted = capitan.NewSignal(
		"qualify.reload.started",
		"Reloadable watching started",
	)

	// ReloadStopped is emitted when a Reloadable stops watching.
	ReloadStopped = capitan.NewSignal(
		"qualify.reload.stopped",
		"Reloadable watching stopped",
	)

	// ReloadStateChanged is emitted when a Reloadable transitions between states.
	ReloadStateChanged = capitan.NewSignal(
		"qualify.reload.state.changed",
		"Reloadable state transition",
	)

	// ReloadChangeReceived is emitted when raw data is received from the watcher.
	ReloadChangeReceived = capitan.NewSignal(
		"qualify.reload.change.received",
		"Raw change received from watcher",
	)

	// ReloadBuildFailed is emitted when a qualifier cannot be built from raw data.
	ReloadBuildFailed = capitan.NewSignal(
		"qualify.reload.build.failed",
		"Qualifier build failed",
	)

	// ReloadApplied is emitted when a rebuilt qualifier replaces the previous one.
	ReloadApplied = capitan.NewSignal(
		"qualify.reload.applied",
		"Qualifier replaced",
	)
)
