package qualify

// State describes whether a Reloadable currently has a qualifier to serve.
type State int32

const (
	// StateLoading indicates the Reloadable has not yet received its
	// initial data.
	StateLoading State = iota

	// StateHealthy indicates the most recent data produced a qualifier.
	StateHealthy

	// StateDegraded indicates the most recent data could not be built.
	// The previously built qualifier keeps serving.
	StateDegraded

	// StateEmpty indicates no data has ever been built successfully.
	// Every value is disqualified until a build succeeds.
	StateEmpty
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateHealthy:
		return "healthy"
	case StateDegraded:
		return "degraded"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}
