package qualify_test

import (
	"testing"

	"github.com/zoobzio/qualify"
)

var (
	isEven     = qualify.Func[int](func(n int) bool { return n%2 == 0 })
	isPositive = qualify.Func[int](func(n int) bool { return n > 0 })
)

// counting returns a qualifier with a fixed result that counts its invocations.
func counting(result bool, calls *int) qualify.Func[int] {
	return func(int) bool {
		*calls++
		return result
	}
}

func TestFunc_Qualify(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want bool
	}{
		{"zero", 0, true},
		{"even", 4, true},
		{"odd", 3, false},
		{"negative even", -4, true},
		{"negative odd", -3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEven.Qualify(tt.in); got != tt.want {
				t.Errorf("isEven.Qualify(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBooleanAlgebra(t *testing.T) {
	qualifiers := map[string]qualify.Qualifier[int]{
		"even":     isEven,
		"positive": isPositive,
		"set":      qualify.In(-3, 0, 7),
	}

	for an, a := range qualifiers {
		for bn, b := range qualifiers {
			for v := -8; v <= 8; v++ {
				if got, want := qualify.And(a, b).Qualify(v), a.Qualify(v) && b.Qualify(v); got != want {
					t.Errorf("%s AND %s on %d = %v, want %v", an, bn, v, got, want)
				}
				if got, want := qualify.Or(a, b).Qualify(v), a.Qualify(v) || b.Qualify(v); got != want {
					t.Errorf("%s OR %s on %d = %v, want %v", an, bn, v, got, want)
				}
			}
		}
		for v := -8; v <= 8; v++ {
			if got, want := qualify.Not(a).Qualify(v), !a.Qualify(v); got != want {
				t.Errorf("NOT %s on %d = %v, want %v", an, v, got, want)
			}
		}
	}
}

func TestDoubleNegation(t *testing.T) {
	q := isEven.Negate().Negate()
	for v := -10; v <= 10; v++ {
		if q.Qualify(v) != isEven.Qualify(v) {
			t.Errorf("double negation differs from original on %d", v)
		}
	}
}

func TestIsEvenAndIsPositive(t *testing.T) {
	positiveCalls := 0
	positive := qualify.Func[int](func(n int) bool {
		positiveCalls++
		return n > 0
	})
	q := isEven.And(positive)

	if q.Qualify(-4) {
		t.Error("expected -4 not to qualify")
	}
	if positiveCalls != 1 {
		t.Errorf("expected isPositive evaluated for -4, got %d calls", positiveCalls)
	}

	if q.Qualify(-3) {
		t.Error("expected -3 not to qualify")
	}
	if positiveCalls != 1 {
		t.Errorf("expected isPositive skipped for -3, got %d calls", positiveCalls)
	}

	if !q.Qualify(4) {
		t.Error("expected 4 to qualify")
	}
}
