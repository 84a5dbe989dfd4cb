package qualify

import (
	"fmt"
	"reflect"
)

// -----------------------------------------------------------------------------
// Fluent Composition
// -----------------------------------------------------------------------------
// Every composition call allocates a new node and leaves its operands
// untouched. Chaining builds a left-associative binary tree in call order:
//
//	a.And(b).Or(c) // (a && b) || c
//
// Nested conjunctions and disjunctions are never flattened or simplified,
// since the tree shape decides which branches run under short-circuiting.

// chain supplies the fluent operators to the sync qualifier types of this
// package. self is the qualifier that embeds it.
type chain[T any] struct {
	self Qualifier[T]
}

// And returns a conjunction with the receiver on the left and other on the right.
func (c chain[T]) And(other Qualifier[T]) *Conjunction[T] {
	return NewConjunction(c.self, other)
}

// AndFunc is And for a bare function.
func (c chain[T]) AndFunc(fn func(T) bool) *Conjunction[T] {
	return NewConjunction[T](c.self, Func[T](fn))
}

// Or returns a disjunction with the receiver on the left and other on the right.
func (c chain[T]) Or(other Qualifier[T]) *Disjunction[T] {
	return NewDisjunction(c.self, other)
}

// OrFunc is Or for a bare function.
func (c chain[T]) OrFunc(fn func(T) bool) *Disjunction[T] {
	return NewDisjunction[T](c.self, Func[T](fn))
}

// Negate returns a negation of the receiver.
func (c chain[T]) Negate() *Negation[T] {
	return NewNegation(c.self)
}

// asyncChain supplies the fluent operators to the async qualifier types.
type asyncChain[T any] struct {
	self AsyncQualifier[T]
}

// And returns an async conjunction with the receiver on the left and other on the right.
func (c asyncChain[T]) And(other AsyncQualifier[T]) *AsyncConjunction[T] {
	return NewAsyncConjunction(c.self, other)
}

// AndFunc is And for a bare function, adapted with CancelAware.
func (c asyncChain[T]) AndFunc(fn func(T) (bool, error)) *AsyncConjunction[T] {
	return NewAsyncConjunction[T](c.self, CancelAware(fn))
}

// Or returns an async disjunction with the receiver on the left and other on the right.
func (c asyncChain[T]) Or(other AsyncQualifier[T]) *AsyncDisjunction[T] {
	return NewAsyncDisjunction(c.self, other)
}

// OrFunc is Or for a bare function, adapted with CancelAware.
func (c asyncChain[T]) OrFunc(fn func(T) (bool, error)) *AsyncDisjunction[T] {
	return NewAsyncDisjunction[T](c.self, CancelAware(fn))
}

// Negate returns an async negation of the receiver.
func (c asyncChain[T]) Negate() *AsyncNegation[T] {
	return NewAsyncNegation(c.self)
}

// And combines any two qualifiers, including caller-defined implementations
// that do not carry the fluent methods.
func And[T any](left, right Qualifier[T]) *Conjunction[T] {
	return NewConjunction(left, right)
}

// Or combines any two qualifiers into a disjunction.
func Or[T any](left, right Qualifier[T]) *Disjunction[T] {
	return NewDisjunction(left, right)
}

// Not negates any qualifier.
func Not[T any](q Qualifier[T]) *Negation[T] {
	return NewNegation(q)
}

// AndAsync combines any two async qualifiers into a conjunction.
func AndAsync[T any](left, right AsyncQualifier[T]) *AsyncConjunction[T] {
	return NewAsyncConjunction(left, right)
}

// OrAsync combines any two async qualifiers into a disjunction.
func OrAsync[T any](left, right AsyncQualifier[T]) *AsyncDisjunction[T] {
	return NewAsyncDisjunction(left, right)
}

// NotAsync negates any async qualifier.
func NotAsync[T any](q AsyncQualifier[T]) *AsyncNegation[T] {
	return NewAsyncNegation(q)
}

// mustQualifier panics when a node is built around a nil child, including
// a nil function or pointer held in a non-nil interface.
func mustQualifier(q any, node, side string) {
	if isNil(q) {
		panic(fmt.Sprintf("qualify: %s requires a non-nil %s qualifier", node, side))
	}
}

func isNil(q any) bool {
	if q == nil {
		return true
	}
	switch v := reflect.ValueOf(q); v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
