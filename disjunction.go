package qualify

import "context"

// Disjunction qualifies a value when either of its children does.
//
// The left child is evaluated first. When it returns true the right child
// is never invoked.
type Disjunction[T any] struct {
	chain[T]
	left, right Qualifier[T]
}

// NewDisjunction creates a disjunction of left and right.
// It panics if either child is nil.
func NewDisjunction[T any](left, right Qualifier[T]) *Disjunction[T] {
	mustQualifier(left, "disjunction", "left")
	mustQualifier(right, "disjunction", "right")
	d := &Disjunction[T]{left: left, right: right}
	d.chain = chain[T]{self: d}
	return d
}

// Qualify reports left.Qualify(v) || right.Qualify(v).
func (d *Disjunction[T]) Qualify(v T) bool {
	return d.left.Qualify(v) || d.right.Qualify(v)
}

// AsyncDisjunction is the async counterpart of Disjunction.
//
// Evaluation is sequential, as for AsyncConjunction. An error from left
// aborts the evaluation and right is never started.
type AsyncDisjunction[T any] struct {
	asyncChain[T]
	left, right AsyncQualifier[T]
}

// NewAsyncDisjunction creates an async disjunction of left and right.
// It panics if either child is nil.
func NewAsyncDisjunction[T any](left, right AsyncQualifier[T]) *AsyncDisjunction[T] {
	mustQualifier(left, "async disjunction", "left")
	mustQualifier(right, "async disjunction", "right")
	d := &AsyncDisjunction[T]{left: left, right: right}
	d.asyncChain = asyncChain[T]{self: d}
	return d
}

// QualifyContext evaluates left, then right only if left did not qualify.
func (d *AsyncDisjunction[T]) QualifyContext(ctx context.Context, v T) (bool, error) {
	ok, err := d.left.QualifyContext(ctx, v)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	return d.right.QualifyContext(ctx, v)
}
