package qualify

import "github.com/zoobzio/capitan"

// Field keys for evaluation and reload events.
var (
	// KeyQualifier is the name given to an observed qualifier.
	KeyQualifier = capitan.NewStringKey("qualifier")

	// KeyDuration is the time an evaluation or rebuild took.
	KeyDuration = capitan.NewDurationKey("duration")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyState is the current state of a Reloadable.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyWatcherType is the type name of the watcher implementation.
	KeyWatcherType = capitan.NewStringKey("watcher_type")

	// KeySize is the number of members in a rebuilt allow-list.
	KeySize = capitan.NewIntKey("size")
)
