package qualify

import "context"

// Conjunction qualifies a value when both of its children do.
//
// The left child is evaluated first. When it returns false the right child
// is never invoked, so callers may rely on right's side effects being
// skipped.
type Conjunction[T any] struct {
	chain[T]
	left, right Qualifier[T]
}

// NewConjunction creates a conjunction of left and right.
// It panics if either child is nil.
func NewConjunction[T any](left, right Qualifier[T]) *Conjunction[T] {
	mustQualifier(left, "conjunction", "left")
	mustQualifier(right, "conjunction", "right")
	c := &Conjunction[T]{left: left, right: right}
	c.chain = chain[T]{self: c}
	return c
}

// Qualify reports left.Qualify(v) && right.Qualify(v).
func (c *Conjunction[T]) Qualify(v T) bool {
	return c.left.Qualify(v) && c.right.Qualify(v)
}

// AsyncConjunction is the async counterpart of Conjunction.
//
// The left child runs to completion before the right child is started; the
// two are never evaluated concurrently. An error from left, including
// cancellation, aborts the evaluation and right is never started.
type AsyncConjunction[T any] struct {
	asyncChain[T]
	left, right AsyncQualifier[T]
}

// NewAsyncConjunction creates an async conjunction of left and right.
// It panics if either child is nil.
func NewAsyncConjunction[T any](left, right AsyncQualifier[T]) *AsyncConjunction[T] {
	mustQualifier(left, "async conjunction", "left")
	mustQualifier(right, "async conjunction", "right")
	c := &AsyncConjunction[T]{left: left, right: right}
	c.asyncChain = asyncChain[T]{self: c}
	return c
}

// QualifyContext evaluates left, then right only if left qualified.
func (c *AsyncConjunction[T]) QualifyContext(ctx context.Context, v T) (bool, error) {
	ok, err := c.left.QualifyContext(ctx, v)
	if err != nil || !ok {
		return false, err
	}
	return c.right.QualifyContext(ctx, v)
}
