package qualify

import (
	"context"
	"iter"
)

// Filter yields the elements of seq that qualify, in source order.
//
// The result is lazy: q is invoked once per element as the consumer pulls,
// and nothing is buffered. It can be ranged over again only if seq can.
//
// Example:
//
//	isEven := qualify.Func[int](func(n int) bool { return n%2 == 0 })
//	for n := range qualify.Filter(slices.Values(nums), isEven) {
//	    fmt.Println(n)
//	}
func Filter[T any](seq iter.Seq[T], q Qualifier[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if q.Qualify(v) && !yield(v) {
				return
			}
		}
	}
}

// FilterContext is Filter for async qualifiers.
//
// Each qualifying element is yielded with a nil error. The first error
// returned by q is yielded once with the zero value of T and ends the
// sequence.
func FilterContext[T any](ctx context.Context, seq iter.Seq[T], q AsyncQualifier[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			ok, err := q.QualifyContext(ctx, v)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if ok && !yield(v, nil) {
				return
			}
		}
	}
}

// FilterChan forwards the qualifying values received from in.
// The returned channel is closed when in is closed or ctx is done.
func FilterChan[T any](ctx context.Context, in <-chan T, q Qualifier[T]) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				if !q.Qualify(v) {
					continue
				}
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
