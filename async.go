package qualify

import "context"

// AsyncQualifier decides whether a value of T qualifies, possibly blocking
// before it can answer.
//
// The context is the cancellation signal. Once it is done it stays done, and
// an implementation is expected to check it before starting costly work or
// to be wrapped by CancelAware, which checks it on the implementation's
// behalf. A non-nil error means the result is unknown; the returned bool
// must be ignored.
type AsyncQualifier[T any] interface {
	QualifyContext(ctx context.Context, v T) (bool, error)
}

// AsyncFunc adapts a cancellation-aware function to the AsyncQualifier
// interface. The function is stored and invoked as-is.
type AsyncFunc[T any] func(ctx context.Context, v T) (bool, error)

// QualifyContext invokes the wrapped function.
func (f AsyncFunc[T]) QualifyContext(ctx context.Context, v T) (bool, error) {
	return f(ctx, v)
}

// And returns an async conjunction with f on the left and other on the right.
func (f AsyncFunc[T]) And(other AsyncQualifier[T]) *AsyncConjunction[T] {
	return NewAsyncConjunction[T](f, other)
}

// AndFunc is And for a bare function, adapted with CancelAware.
//
//	exists.AndFunc(func(id string) (bool, error) { return cache.Has(id) })
func (f AsyncFunc[T]) AndFunc(fn func(T) (bool, error)) *AsyncConjunction[T] {
	return NewAsyncConjunction[T](f, CancelAware(fn))
}

// Or returns an async disjunction with f on the left and other on the right.
func (f AsyncFunc[T]) Or(other AsyncQualifier[T]) *AsyncDisjunction[T] {
	return NewAsyncDisjunction[T](f, other)
}

// OrFunc is Or for a bare function, adapted with CancelAware.
func (f AsyncFunc[T]) OrFunc(fn func(T) (bool, error)) *AsyncDisjunction[T] {
	return NewAsyncDisjunction[T](f, CancelAware(fn))
}

// Negate returns an async negation of f.
func (f AsyncFunc[T]) Negate() *AsyncNegation[T] {
	return NewAsyncNegation[T](f)
}

// CancelAware adapts a function that knows nothing about cancellation.
//
// The returned AsyncFunc checks the context once, immediately before calling
// fn. If the context is already done it fails with an error matching
// ErrCanceled and fn is never called. Once fn is running it is not
// interrupted. It panics if fn is nil.
//
// Example:
//
//	lookup := qualify.CancelAware(func(id string) (bool, error) {
//	    return store.Exists(id)
//	})
//
//	ok, err := lookup.QualifyContext(ctx, "user-42")
func CancelAware[T any](fn func(v T) (bool, error)) AsyncFunc[T] {
	if fn == nil {
		panic("qualify: cancel-aware adapter requires a non-nil function")
	}
	return func(ctx context.Context, v T) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, canceled(err)
		}
		return fn(v)
	}
}

// Lift promotes a sync qualifier onto the async track. The result checks
// for cancellation before each evaluation, like CancelAware.
func Lift[T any](q Qualifier[T]) AsyncFunc[T] {
	mustQualifier(q, "lift", "source")
	return CancelAware(func(v T) (bool, error) {
		return q.Qualify(v), nil
	})
}

// Check evaluates q with a context that is never canceled.
func Check[T any](q AsyncQualifier[T], v T) (bool, error) {
	return q.QualifyContext(context.Background(), v)
}

// Ensure AsyncFunc implements AsyncQualifier.
var _ AsyncQualifier[int] = AsyncFunc[int](nil)
