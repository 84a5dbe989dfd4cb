package qualify_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/zoobzio/qualify"
)

func TestFilter_EvenIntegers(t *testing.T) {
	const length = 128
	source := make([]int, length)
	for i := range source {
		source[i] = i
	}

	got := slices.Collect(qualify.Filter[int](slices.Values(source), isEven))

	if len(got) != length/2 {
		t.Fatalf("expected %d elements, got %d", length/2, len(got))
	}
	for i, v := range got {
		if v != i*2 {
			t.Fatalf("element %d = %d, want %d", i, v, i*2)
		}
	}
}

func TestFilter_Lazy(t *testing.T) {
	calls := 0
	q := qualify.Func[int](func(n int) bool {
		calls++
		return n%2 == 0
	})

	seq := qualify.Filter[int](slices.Values([]int{1, 2, 3, 4, 5, 6}), q)
	if calls != 0 {
		t.Fatalf("expected no evaluation before iteration, got %d", calls)
	}

	for v := range seq {
		if v == 2 {
			break
		}
	}
	if calls != 2 {
		t.Errorf("expected evaluation to stop with the consumer, got %d calls", calls)
	}
}

func TestFilterContext_YieldsMatches(t *testing.T) {
	seq := qualify.FilterContext[int](context.Background(), slices.Values([]int{-2, -1, 0, 1, 2}), qualify.Lift[int](isPositive))

	var got []int
	for v, err := range seq {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestFilterContext_StopsAtFirstError(t *testing.T) {
	errLookup := errors.New("lookup failed")
	calls := 0
	q := qualify.AsyncFunc[int](func(_ context.Context, n int) (bool, error) {
		calls++
		if n == 3 {
			return false, errLookup
		}
		return true, nil
	})

	var got []int
	var gotErr error
	for v, err := range qualify.FilterContext[int](context.Background(), slices.Values([]int{1, 2, 3, 4}), q) {
		if err != nil {
			gotErr = err
			continue
		}
		got = append(got, v)
	}

	if !errors.Is(gotErr, errLookup) {
		t.Errorf("expected errLookup, got %v", gotErr)
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
	if calls != 3 {
		t.Errorf("expected evaluation to stop at the error, got %d calls", calls)
	}
}

func TestFilterContext_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, err := range qualify.FilterContext[int](ctx, slices.Values([]int{1, 2}), qualify.Lift[int](isEven)) {
		if !qualify.IsCanceled(err) {
			t.Errorf("expected cancellation, got %v", err)
		}
	}
}

func TestFilterChan(t *testing.T) {
	in := make(chan int)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out := qualify.FilterChan[int](ctx, in, isEven)

	go func() {
		defer close(in)
		for i := 0; i < 10; i++ {
			in <- i
		}
	}()

	var got []int
	for v := range out {
		got = append(got, v)
	}
	if !slices.Equal(got, []int{0, 2, 4, 6, 8}) {
		t.Errorf("got %v, want [0 2 4 6 8]", got)
	}
}

func TestFilterChan_ClosesOnCancel(t *testing.T) {
	in := make(chan int)
	ctx, cancel := context.WithCancel(context.Background())

	out := qualify.FilterChan[int](ctx, in, isEven)
	cancel()

	select {
	case _, ok := <-out:
		if ok {
			t.Error("expected no values after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("expected output to close after cancel")
	}
}
