package qualify

// Qualifier decides whether a value of T qualifies.
//
// Implementations must terminate and should be pure from the caller's
// perspective. A Qualifier may be shared across goroutines as long as the
// logic it wraps is safe for concurrent use; this package adds no locking.
type Qualifier[T any] interface {
	Qualify(v T) bool
}

// Func adapts a bare function to the Qualifier interface.
//
// Any panic raised by the function propagates unchanged.
//
// Example:
//
//	isEven := qualify.Func[int](func(n int) bool { return n%2 == 0 })
//	isPositive := qualify.Func[int](func(n int) bool { return n > 0 })
//
//	q := isEven.And(isPositive)
//	q.Qualify(4)  // true
//	q.Qualify(-4) // false
type Func[T any] func(v T) bool

// Qualify invokes the wrapped function.
func (f Func[T]) Qualify(v T) bool {
	return f(v)
}

// And returns a conjunction with f on the left and other on the right.
func (f Func[T]) And(other Qualifier[T]) *Conjunction[T] {
	return NewConjunction[T](f, other)
}

// AndFunc is And for a bare function.
func (f Func[T]) AndFunc(fn func(T) bool) *Conjunction[T] {
	return NewConjunction[T](f, Func[T](fn))
}

// Or returns a disjunction with f on the left and other on the right.
func (f Func[T]) Or(other Qualifier[T]) *Disjunction[T] {
	return NewDisjunction[T](f, other)
}

// OrFunc is Or for a bare function.
func (f Func[T]) OrFunc(fn func(T) bool) *Disjunction[T] {
	return NewDisjunction[T](f, Func[T](fn))
}

// Negate returns a negation of f.
func (f Func[T]) Negate() *Negation[T] {
	return NewNegation[T](f)
}

// Ensure Func implements Qualifier.
var _ Qualifier[int] = Func[int](nil)
