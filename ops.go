package faststorage

import "sort"

// Swap exchanges the elements at logical indices i and j. Both indices are
// unchecked, like Get and Set.
func (s *Storage[T]) Swap(i, j int) {
	if i == j {
		return
	}
	vi := s.Get(i)
	s.Set(i, s.Get(j))
	s.Set(j, vi)
}

// sortAdapter exposes a Storage to the stdlib sort machinery. Sorting works
// through the logical index space, so elements move freely across the
// region boundary.
type sortAdapter[T any] struct {
	s    *Storage[T]
	less func(a, b T) bool
}

func (a sortAdapter[T]) Len() int           { return a.s.size }
func (a sortAdapter[T]) Less(i, j int) bool { return a.less(a.s.Get(i), a.s.Get(j)) }
func (a sortAdapter[T]) Swap(i, j int)      { a.s.Swap(i, j) }

// Sort orders the elements in place according to less.
func (s *Storage[T]) Sort(less func(a, b T) bool) {
	if less == nil || s.size < 2 {
		return
	}
	sort.Sort(sortAdapter[T]{s: s, less: less})
}

// Reverse reverses the element order in place.
func (s *Storage[T]) Reverse() {
	for i, j := 0, s.size-1; i < j; i, j = i+1, j-1 {
		s.Swap(i, j)
	}
}

// Find returns an iterator at the first element satisfying pred, or the
// past-the-end iterator when no element matches.
func (s *Storage[T]) Find(pred func(T) bool) Iterator[T] {
	for i := 0; i < s.size; i++ {
		if pred(s.Get(i)) {
			return Iterator[T]{index: i, storage: s}
		}
	}
	return s.End()
}
