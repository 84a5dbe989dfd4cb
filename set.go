package qualify

// Set qualifies values that are members of a fixed collection.
type Set[T comparable] struct {
	chain[T]
	members map[T]struct{}
}

// In creates a Set of the given values. Duplicates are ignored.
//
// Example:
//
//	admin := qualify.In("alice", "bob")
//	admin.Qualify("alice") // true
func In[T comparable](values ...T) *Set[T] {
	s := &Set[T]{members: make(map[T]struct{}, len(values))}
	for _, v := range values {
		s.members[v] = struct{}{}
	}
	s.chain = chain[T]{self: s}
	return s
}

// Qualify reports whether v is a member of the set.
func (s *Set[T]) Qualify(v T) bool {
	_, ok := s.members[v]
	return ok
}

// Len returns the number of distinct members.
func (s *Set[T]) Len() int {
	return len(s.members)
}
