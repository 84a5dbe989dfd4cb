package qualify

import "context"

// Negation inverts the result of its inner qualifier.
type Negation[T any] struct {
	chain[T]
	inner Qualifier[T]
}

// NewNegation creates a negation of inner. It panics if inner is nil.
func NewNegation[T any](inner Qualifier[T]) *Negation[T] {
	mustQualifier(inner, "negation", "inner")
	n := &Negation[T]{inner: inner}
	n.chain = chain[T]{self: n}
	return n
}

// Qualify reports !inner.Qualify(v).
func (n *Negation[T]) Qualify(v T) bool {
	return !n.inner.Qualify(v)
}

// AsyncNegation is the async counterpart of Negation.
// Errors from inner are returned unchanged, never turned into a result.
type AsyncNegation[T any] struct {
	asyncChain[T]
	inner AsyncQualifier[T]
}

// NewAsyncNegation creates an async negation of inner.
// It panics if inner is nil.
func NewAsyncNegation[T any](inner AsyncQualifier[T]) *AsyncNegation[T] {
	mustQualifier(inner, "async negation", "inner")
	n := &AsyncNegation[T]{inner: inner}
	n.asyncChain = asyncChain[T]{self: n}
	return n
}

// QualifyContext awaits inner and inverts its result.
func (n *AsyncNegation[T]) QualifyContext(ctx context.Context, v T) (bool, error) {
	ok, err := n.inner.QualifyContext(ctx, v)
	if err != nil {
		return false, err
	}
	return !ok, nil
}
