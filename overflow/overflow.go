// Package overflow implements the growable half of a hybrid sequence
// container: a contiguous, heap-backed region holding the elements that no
// longer fit into the fixed inline block.
//
// The region is created with a headroom reservation, since the owning
// container only ever creates it at the moment the inline block is full and
// more growth is imminent. Removal operations take an optional drop hook so
// the container can keep its element destruction contract observable.
package overflow

// Region is a growable contiguous element sequence.
//
// The zero Region is not usable; create regions with NewRegion. A Region is
// not goroutine-safe, mirroring its owning container.
type Region[T any] struct {
	elems []T
}

// NewRegion creates an empty region reserving capacity for headroom elements.
// A non-positive headroom yields an empty reservation.
func NewRegion[T any](headroom int) *Region[T] {
	if headroom < 0 {
		headroom = 0
	}
	return &Region[T]{elems: make([]T, 0, headroom)}
}

// Len returns the number of elements in the region.
func (r *Region[T]) Len() int {
	return len(r.elems)
}

// Append adds v at the end of the region.
func (r *Region[T]) Append(v T) {
	r.elems = append(r.elems, v)
}

// EmplaceBack appends a zero element and lets init construct it in place.
func (r *Region[T]) EmplaceBack(init func(*T)) {
	var zero T
	r.elems = append(r.elems, zero)
	if init != nil {
		init(&r.elems[len(r.elems)-1])
	}
}

// At returns the element at region-relative index i.
func (r *Region[T]) At(i int) T {
	return r.elems[i]
}

// Ptr returns a pointer to the element at region-relative index i. The
// pointer is invalidated by any operation that grows or shifts the region.
func (r *Region[T]) Ptr(i int) *T {
	return &r.elems[i]
}

// SetAt overwrites the element at region-relative index i.
func (r *Region[T]) SetAt(i int, v T) {
	r.elems[i] = v
}

// First returns the first element. The region must not be empty.
func (r *Region[T]) First() T {
	return r.elems[0]
}

// RemoveAt removes the element at region-relative index i, shifting later
// elements down by one. The drop hook (if any) observes the removed value
// after it has left the sequence.
func (r *Region[T]) RemoveAt(i int, drop func(T)) {
	if i < 0 || i >= len(r.elems) {
		return
	}
	removed := r.elems[i]
	n := len(r.elems)
	copy(r.elems[i:n-1], r.elems[i+1:n])
	var zero T
	r.elems[n-1] = zero // moved-from tail slot
	r.elems = r.elems[:n-1]
	if drop != nil {
		drop(removed)
	}
}

// RemoveFirst removes the first element.
func (r *Region[T]) RemoveFirst(drop func(T)) {
	r.RemoveAt(0, drop)
}

// CutLast removes the last element. No-op on an empty region.
func (r *Region[T]) CutLast(drop func(T)) {
	n := len(r.elems)
	if n == 0 {
		return
	}
	removed := r.elems[n-1]
	var zero T
	r.elems[n-1] = zero
	r.elems = r.elems[:n-1]
	if drop != nil {
		drop(removed)
	}
}

// Reset destroys all elements in storage order and empties the region. The
// backing array is retained for reuse.
func (r *Region[T]) Reset(drop func(T)) {
	if drop != nil {
		for _, v := range r.elems {
			drop(v)
		}
	}
	clear(r.elems)
	r.elems = r.elems[:0]
}

// Clone returns a deep copy of the region.
func (r *Region[T]) Clone() *Region[T] {
	cloned := &Region[T]{elems: make([]T, len(r.elems), cap(r.elems))}
	copy(cloned.elems, r.elems)
	return cloned
}
