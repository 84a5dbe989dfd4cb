// Package redis provides a qualify.Watcher over the members of a Redis set,
// for use with qualify.AllowList.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"
)

// SetWatcher watches a Redis SET using keyspace notifications and emits its
// members as a JSON array of strings. Requires keyspace notifications:
//
//	CONFIG SET notify-keyspace-events KA
//
// Example:
//
//	allowed := qualify.AllowList[string](redis.New(client, "tenants:allowed"), qualify.JSONMembers[string]())
type SetWatcher struct {
	client *redis.Client
	key    string
	db     int
}

// Option configures a SetWatcher.
type Option func(*SetWatcher)

// WithDB sets the database index used in the keyspace channel name.
// Default: 0.
func WithDB(db int) Option {
	return func(w *SetWatcher) {
		w.db = db
	}
}

// New creates a SetWatcher for the set stored at key.
func New(client *redis.Client, key string, opts ...Option) *SetWatcher {
	w := &SetWatcher{client: client, key: key}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// setEvents are the keyspace events that change a set's membership.
// SMOVE is reported to each key as srem or sadd. RENAME reports rename_from
// on the old key, which no longer holds the set.
var setEvents = []string{
	"sadd", "srem", "spop",
	"sinterstore", "sunionstore", "sdiffstore",
	"del", "expired", "evicted",
	"rename_from", "rename_to",
}

// changesMembers reports whether a keyspace event may have changed the set.
func changesMembers(event string) bool {
	return slices.Contains(setEvents, event)
}

// Watch emits the current members immediately, then again after every
// command that changes the set. A missing key emits an empty array.
func (w *SetWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	channel := fmt.Sprintf("__keyspace@%d__:%s", w.db, w.key)
	pubsub := w.client.Subscribe(ctx, channel)

	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to keyspace notifications: %w", err)
	}

	out := make(chan []byte)

	go func() {
		defer close(out)
		defer pubsub.Close()

		if !w.emit(ctx, out) {
			return
		}

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if !changesMembers(msg.Payload) {
					continue
				}
				if !w.emit(ctx, out) {
					return
				}
			}
		}
	}()

	return out, nil
}

// emit reads the set and sends it on out. It reports false once ctx is done.
func (w *SetWatcher) emit(ctx context.Context, out chan<- []byte) bool {
	members, err := w.client.SMembers(ctx, w.key).Result()
	if err != nil {
		return ctx.Err() == nil
	}
	data, err := encodeMembers(members)
	if err != nil {
		return true
	}
	select {
	case out <- data:
		return true
	case <-ctx.Done():
		return false
	}
}

// encodeMembers returns members as a sorted JSON array so that equal sets
// always produce equal bytes.
func encodeMembers(members []string) ([]byte, error) {
	sorted := slices.Clone(members)
	slices.Sort(sorted)
	if sorted == nil {
		sorted = []string{}
	}
	return json.Marshal(sorted)
}
