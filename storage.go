package faststorage

import (
	"fmt"

	"github.com/schwollie/faststorage/inline"
	"github.com/schwollie/faststorage/overflow"
)

// DefaultInlineCapacity is the conventional small-buffer slot count.
// A zero InlineCapacity is meaningful (pure overflow storage), so the
// default is never applied implicitly.
const DefaultInlineCapacity = 5

// Config configures a Storage.
type Config[T any] struct {
	// InlineCapacity is the number of element slots N held in the inline
	// block. It must not be negative. A capacity of 0 degrades the container
	// to a pure overflow-backed sequence.
	InlineCapacity int
	// Drop, if non-nil, observes every element the container destroys:
	// on Pop, Erase, Clear and Assign teardown. Moved elements are not
	// dropped at their old slot; only the overflow-side instance of a
	// boundary-crossing move is.
	Drop func(T)
}

func (cfg Config[T]) normalized() Config[T] {
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.InlineCapacity < 0 {
		return fmt.Errorf("%w: inline capacity must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Storage is a hybrid sequence container over two storage regions.
//
// Elements at logical indices below the inline capacity live in a fixed
// inline block; all further elements live in a growable overflow region that
// is created lazily on the first spill. See the package documentation for
// the performance profile.
//
// A Storage created by New is empty. It is mutated exclusively through
// Push, Emplace, Pop, Erase, Clear and Assign.
type Storage[T any] struct {
	cfg  Config[T]
	inpl *inline.Block[T]
	oopl *overflow.Region[T] // nil until the first spill
	size int
}

// New creates an empty Storage with validated configuration.
func New[T any](cfg Config[T]) (*Storage[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Storage[T]{
		cfg:  cfg,
		inpl: inline.NewBlock[T](cfg.InlineCapacity),
	}, nil
}

// Of creates a Storage with the given inline capacity from an ordered list
// of initial values, inserted through the push path.
func Of[T any](inlineCap int, values ...T) *Storage[T] {
	s, err := New(Config[T]{InlineCapacity: inlineCap})
	assert(err == nil, "Of requires a non-negative inline capacity")
	for _, v := range values {
		s.Push(v)
	}
	return s
}

// Push appends a copy of v at the tail of the container.
func (s *Storage[T]) Push(v T) {
	if s.size < s.cfg.InlineCapacity {
		s.inpl.PlaceAt(s.size, v)
	} else {
		s.spill()
		s.oopl.Append(v)
	}
	s.size++
}

// Emplace appends a new element constructed in place: the target slot is
// zeroed and init builds the value directly inside it. A nil init leaves
// the zero value.
func (s *Storage[T]) Emplace(init func(*T)) {
	if s.size < s.cfg.InlineCapacity {
		s.inpl.EmplaceAt(s.size, init)
	} else {
		s.spill()
		s.oopl.EmplaceBack(init)
	}
	s.size++
}

// spill makes sure the overflow region exists. It is called on the exact
// transition size == InlineCapacity, so the region reserves another
// InlineCapacity elements of headroom as an amortization hint.
func (s *Storage[T]) spill() {
	if s.oopl != nil {
		return
	}
	tracer().Debugf("storage spills into overflow region, inline capacity = %d", s.cfg.InlineCapacity)
	s.oopl = overflow.NewRegion[T](s.cfg.InlineCapacity)
}

// Pop removes the tail element. Popping an empty container is a no-op.
func (s *Storage[T]) Pop() {
	if s.size == 0 {
		return
	}
	s.size--
	if s.size < s.cfg.InlineCapacity {
		s.inpl.DropAt(s.size, s.cfg.Drop)
	} else {
		s.oopl.CutLast(s.cfg.Drop)
	}
}

// Erase removes the element at logical index i, shifting all later elements
// down by one. It reports whether an element was removed; an index at or
// beyond the current size leaves the container untouched.
//
// Erasing an inline index destroys the addressed element first. If the
// overflow region is non-empty, its first element then crosses the region
// boundary into the vacated last inline slot, and the overflow-side instance
// is destroyed by the region's own removal — in that order. Tests rely on
// this exact destruction sequence.
func (s *Storage[T]) Erase(i int) bool {
	if i < 0 || i >= s.size {
		return false
	}
	n := s.cfg.InlineCapacity
	if i < n {
		s.inpl.DropAt(i, s.cfg.Drop)
		last := s.size // live inline slots are [0, min(size, n))
		if last > n {
			last = n
		}
		for j := i; j+1 < last; j++ {
			s.inpl.MoveAt(j, j+1)
		}
		if s.size > n {
			tracer().Debugf("erase pulls overflow element across region boundary")
			s.inpl.PlaceAt(n-1, s.oopl.First())
			s.oopl.RemoveFirst(s.cfg.Drop)
		}
		// Without a boundary crossing the vacated tail slot is already in
		// moved-from state (or was the dropped slot itself).
	} else {
		s.oopl.RemoveAt(i-n, s.cfg.Drop)
	}
	s.size--
	return true
}

// Clear destroys every live element and resets the size to 0. Overflow
// elements are destroyed first, in storage order, then the inline elements
// in index order. The overflow region's backing memory is retained for
// reuse.
func (s *Storage[T]) Clear() {
	if s.oopl != nil {
		s.oopl.Reset(s.cfg.Drop)
	}
	last := s.size
	if last > s.cfg.InlineCapacity {
		last = s.cfg.InlineCapacity
	}
	for i := 0; i < last; i++ {
		s.inpl.DropAt(i, s.cfg.Drop)
	}
	s.size = 0
}

// Assign deep-copies the contents of other into the receiver, destroying
// the receiver's previous elements first. Both containers must share the
// same inline capacity. Self-assignment is a no-op.
func (s *Storage[T]) Assign(other *Storage[T]) {
	if s == other {
		return
	}
	assert(s.cfg.InlineCapacity == other.cfg.InlineCapacity,
		"Assign requires identical inline capacities")
	s.Clear()
	liveInline := other.size
	if liveInline > other.cfg.InlineCapacity {
		liveInline = other.cfg.InlineCapacity
	}
	s.inpl.CopyFrom(other.inpl, liveInline)
	if other.oopl != nil && other.oopl.Len() > 0 {
		s.oopl = other.oopl.Clone()
	}
	s.size = other.size
}

// Clone returns a deep copy of the container, including its configuration.
// Mutating the clone never affects the original.
func (s *Storage[T]) Clone() *Storage[T] {
	cloned := &Storage[T]{
		cfg:  s.cfg,
		inpl: inline.NewBlock[T](s.cfg.InlineCapacity),
		size: s.size,
	}
	liveInline := s.size
	if liveInline > s.cfg.InlineCapacity {
		liveInline = s.cfg.InlineCapacity
	}
	cloned.inpl.CopyFrom(s.inpl, liveInline)
	if s.oopl != nil {
		cloned.oopl = s.oopl.Clone()
	}
	return cloned
}
