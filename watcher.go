package qualify

import "context"

// Watcher observes a source of qualifier data and emits raw bytes on a
// channel whenever it changes.
type Watcher interface {
	// Watch returns a channel that emits the source's current contents
	// immediately and again after every change. The channel is closed when
	// ctx is canceled or the source fails beyond recovery.
	Watch(ctx context.Context) (<-chan []byte, error)
}

// WatchFunc adapts a bare function to the Watcher interface.
type WatchFunc func(ctx context.Context) (<-chan []byte, error)

// Watch invokes the wrapped function.
func (f WatchFunc) Watch(ctx context.Context) (<-chan []byte, error) {
	return f(ctx)
}

// Channel feeds a Reloadable straight from ch, for sources that already
// push their data and for tests.
//
// The Reloadable reads ch itself, so a value sent before Start is its
// initial data and, in SyncMode, each value sent afterwards is built by
// exactly one Process call. Closing ch stops watching.
//
//	ch := make(chan []byte, 1)
//	ch <- []byte("alice bob")
//	r := qualify.AllowList[string](qualify.Channel(ch), qualify.LineMembers).SyncMode()
func Channel(ch <-chan []byte) WatchFunc {
	return func(context.Context) (<-chan []byte, error) {
		return ch, nil
	}
}
