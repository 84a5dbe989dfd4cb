/*
Package qualify provides composable predicates ("qualifiers") that decide
whether a value of some type T qualifies, and combinators that join them into
larger boolean expressions without rewriting the underlying logic.

There are two parallel tracks. A Qualifier answers immediately; an
AsyncQualifier may block and takes a context.Context as its cancellation
signal. The tracks never mix: Lift promotes a sync qualifier explicitly.

# Basic Usage

Wrap ad-hoc logic with Func and compose it fluently:

	isEven := qualify.Func[int](func(n int) bool { return n%2 == 0 })
	isPositive := qualify.Func[int](func(n int) bool { return n > 0 })

	q := isEven.And(isPositive).Or(qualify.In(-1, -3))
	q.Qualify(4)  // true
	q.Qualify(-3) // true
	q.Qualify(-4) // false

Chaining builds a left-associative tree in call order, so the example above
is (isEven && isPositive) || in(-1, -3). Nothing is flattened or simplified.

# Short-Circuiting

And evaluates its left side first and skips the right side when the left
side is false; Or skips the right side when the left side is true. Callers
may rely on skipped qualifiers never running.

# Async Qualifiers

	exists := qualify.CancelAware(func(id string) (bool, error) {
	    return store.Exists(id)
	})
	active := qualify.AsyncFunc[string](func(ctx context.Context, id string) (bool, error) {
	    return store.IsActive(ctx, id)
	})

	ok, err := exists.And(active).QualifyContext(ctx, "user-42")
	if qualify.IsCanceled(err) {
	    // result unknown
	}

Children of an async composite run one after another, never concurrently.
Errors, including cancellation, propagate unchanged and abort the
evaluation; a non-nil error means the result is unknown, not false.

# Observability

Observe and ObserveAsync emit capitan signals per evaluation:

	capitan.Hook(qualify.EvaluationRejected, func(_ context.Context, e *capitan.Event) {
	    name, _ := qualify.KeyQualifier.From(e)
	    log.Printf("rejected by %s", name)
	})

# Integration

Filter, FilterContext and FilterChan apply a qualifier to sequences and
channels. Gate and Guard plug qualifiers into pipz pipelines. Valid and
Matches build qualifiers from validator struct tags. Reloadable and
AllowList rebuild a qualifier whenever a Watcher reports new data.
*/
package qualify
