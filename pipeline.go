package qualify

import (
	"context"

	"github.com/zoobzio/pipz"
)

// Gate runs next only for values that qualify. Values that do not qualify
// pass through unchanged without error.
//
// Example:
//
//	notify := pipz.Effect("notify", sendNotification)
//	pipeline := qualify.Gate("premium-only", isPremium, notify)
//	user, err := pipeline.Process(ctx, user)
func Gate[T any](name string, q Qualifier[T], next pipz.Chainable[T]) pipz.Chainable[T] {
	mustQualifier(q, "gate", "condition")
	return pipz.NewFilter(pipz.Name(name), func(_ context.Context, v T) bool {
		return q.Qualify(v)
	}, next)
}

// Guard stops the pipeline for values that do not qualify.
//
// Non-qualifying values fail with ErrRejected. Errors from q, including
// cancellation, fail the pipeline unchanged.
func Guard[T any](name string, q AsyncQualifier[T]) pipz.Chainable[T] {
	mustQualifier(q, "guard", "condition")
	return pipz.Apply(pipz.Name(name), func(ctx context.Context, v T) (T, error) {
		ok, err := q.QualifyContext(ctx, v)
		if err != nil {
			return v, err
		}
		if !ok {
			return v, ErrRejected
		}
		return v, nil
	})
}
