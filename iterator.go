package faststorage

import "iter"

// Iterator is a random-access cursor over the logical index space of a
// Storage.
//
// An iterator holds an index and a back-reference to its container; all
// element access is delegated back through the container, never through a
// cached element address, since elements relocate on erase. Iterator values
// are cheap and immutable: arithmetic returns new iterators.
//
// Two iterators are only comparable when they reference the same Storage
// instance.
type Iterator[T any] struct {
	index   int
	storage *Storage[T]
}

// Begin returns an iterator positioned at logical index 0.
func (s *Storage[T]) Begin() Iterator[T] {
	return Iterator[T]{index: 0, storage: s}
}

// End returns the past-the-end iterator.
func (s *Storage[T]) End() Iterator[T] {
	return Iterator[T]{index: s.size, storage: s}
}

// Index returns the logical index the iterator points at.
func (it Iterator[T]) Index() int {
	return it.index
}

// Value returns the element under the iterator, routed through the
// container's unchecked access path.
func (it Iterator[T]) Value() T {
	return it.storage.Get(it.index)
}

// Set overwrites the element under the iterator.
func (it Iterator[T]) Set(v T) {
	it.storage.Set(it.index, v)
}

// Next returns an iterator advanced by one position.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{index: it.index + 1, storage: it.storage}
}

// Prev returns an iterator moved back by one position.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{index: it.index - 1, storage: it.storage}
}

// Add returns an iterator offset by off positions.
func (it Iterator[T]) Add(off int) Iterator[T] {
	return Iterator[T]{index: it.index + off, storage: it.storage}
}

// Sub returns an iterator offset by -off positions.
func (it Iterator[T]) Sub(off int) Iterator[T] {
	return Iterator[T]{index: it.index - off, storage: it.storage}
}

// Diff returns the positional distance it - other.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	assert(it.storage == other.storage, "iterator Diff across different storages")
	return it.index - other.index
}

// Compare orders two iterators over the same storage: -1, 0 or +1.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	assert(it.storage == other.storage, "iterator Compare across different storages")
	switch {
	case it.index < other.index:
		return -1
	case it.index > other.index:
		return 1
	}
	return 0
}

// Equal reports whether both iterators reference the same position of the
// same storage.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.storage == other.storage && it.index == other.index
}

// Before reports whether it points at an earlier position than other.
func (it Iterator[T]) Before(other Iterator[T]) bool {
	return it.Compare(other) < 0
}

// Done reports whether the iterator has reached or passed the end of its
// container.
func (it Iterator[T]) Done() bool {
	return it.index >= it.storage.size
}

// Erase removes the element under the iterator from the container.
//
// On success the returned iterator is positioned one before the erasure
// point, so that a subsequent Next revisits the element that slid into the
// erased slot — the idiom for erasing while iterating:
//
//	for it := s.Begin(); !it.Done(); it = it.Next() {
//		if unwanted(it.Value()) {
//			it = it.Erase()
//		}
//	}
//
// If the index is out of range the container stays untouched and the
// iterator is returned unchanged.
func (it Iterator[T]) Erase() Iterator[T] {
	if it.storage.Erase(it.index) {
		return Iterator[T]{index: it.index - 1, storage: it.storage}
	}
	return it
}

// EraseAt removes the element under it, equivalent to it.Erase.
func (s *Storage[T]) EraseAt(it Iterator[T]) Iterator[T] {
	assert(it.storage == s, "EraseAt with an iterator of a different storage")
	return it.Erase()
}

// Range returns a read-only iterator over all elements in logical order.
func (s *Storage[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(s.Get(i)) {
				return
			}
		}
	}
}

// Each visits all elements in logical order.
//
// The callback receives each element and its logical index. Iteration stops
// at the first callback error and returns that error to the caller.
func (s *Storage[T]) Each(f func(v T, i int) error) error {
	for i := 0; i < s.size; i++ {
		if err := f(s.Get(i), i); err != nil {
			return err
		}
	}
	return nil
}
