package faststorage

// Len returns the current logical element count.
func (s *Storage[T]) Len() int {
	return s.size
}

// IsEmpty reports whether the container has no elements.
func (s *Storage[T]) IsEmpty() bool {
	return s.size == 0
}

// InlineCapacity returns the fixed slot count N of the inline block.
func (s *Storage[T]) InlineCapacity() int {
	return s.cfg.InlineCapacity
}

// InlineFootprint returns the byte size of the inline block, including
// alignment padding between elements.
func (s *Storage[T]) InlineFootprint() uintptr {
	return s.inpl.Footprint()
}

// Get returns the element at logical index i without bounds checking
// against the current size. Reading at or beyond Len() is undefined by
// contract; use At for a checked read.
func (s *Storage[T]) Get(i int) T {
	if i < s.cfg.InlineCapacity {
		return s.inpl.At(i)
	}
	return s.oopl.At(i - s.cfg.InlineCapacity)
}

// Set overwrites the element at logical index i without bounds checking
// against the current size. Writing at or beyond Len() is undefined by
// contract.
func (s *Storage[T]) Set(i int, v T) {
	if i < s.cfg.InlineCapacity {
		s.inpl.SetAt(i, v)
		return
	}
	s.oopl.SetAt(i-s.cfg.InlineCapacity, v)
}

// Ref returns a pointer to the element at logical index i, unchecked like
// Get. Pointers into the overflow region are invalidated by operations that
// grow or shift the container.
func (s *Storage[T]) Ref(i int) *T {
	if i < s.cfg.InlineCapacity {
		return s.inpl.Ptr(i)
	}
	return s.oopl.Ptr(i - s.cfg.InlineCapacity)
}

// At returns the element at logical index i with bounds validation. It is
// a thin checked wrapper over the unchecked Get path.
func (s *Storage[T]) At(i int) (T, error) {
	var zero T
	if s.size == 0 {
		return zero, ErrStorageEmpty
	}
	if i < 0 || i >= s.size {
		return zero, ErrIndexOutOfBounds
	}
	return s.Get(i), nil
}
