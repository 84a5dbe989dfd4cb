package benchmarks

import (
	"context"
	"slices"
	"testing"

	"github.com/zoobzio/qualify"
)

var (
	isEven     = qualify.Func[int](func(n int) bool { return n%2 == 0 })
	isPositive = qualify.Func[int](func(n int) bool { return n > 0 })
	sink       bool
)

func BenchmarkFunc_Qualify(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = isEven.Qualify(i)
	}
}

func BenchmarkConjunction_Qualify(b *testing.B) {
	q := isEven.And(isPositive)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = q.Qualify(i)
	}
}

func BenchmarkDeepChain_Qualify(b *testing.B) {
	var q qualify.Qualifier[int] = isEven
	for i := 0; i < 16; i++ {
		q = qualify.Or[int](qualify.And[int](q, isPositive), qualify.Not[int](isEven))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = q.Qualify(i)
	}
}

func BenchmarkAsyncConjunction_QualifyContext(b *testing.B) {
	q := qualify.Lift[int](isEven).And(qualify.Lift[int](isPositive))
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink, _ = q.QualifyContext(ctx, i)
	}
}

func BenchmarkFilter(b *testing.B) {
	values := make([]int, 1024)
	for i := range values {
		values[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := range qualify.Filter[int](slices.Values(values), isEven) {
			sink = v > 0
		}
	}
}

func BenchmarkSet_Qualify(b *testing.B) {
	set := qualify.In(1, 3, 5, 7, 11, 13)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = set.Qualify(i)
	}
}
