// Package inline implements the fixed half of a hybrid sequence container:
// a block of element slots that never grows and never runs element
// construction on its own. The owning container decides which slots are
// live and drives construction and destruction explicitly.
package inline

import "unsafe"

// Block is a fixed-capacity array of element slots.
//
// A Block never grows and never tracks which slots are live: the owning
// container is responsible for that invariant. Slots the container has not
// placed a value into, and slots it has moved out of or dropped, hold the
// zero value and must be treated as uninitialized garbage.
//
// The block is deliberately dumb: it exposes only construct-at, destroy-at
// and read/write/move-at operations on single slots.
type Block[T any] struct {
	// slots is the fixed backing storage; len(slots) == capacity for the
	// lifetime of the block.
	slots []T
}

// NewBlock allocates a block with the given slot capacity. A capacity of 0
// yields a valid block that holds nothing.
func NewBlock[T any](capacity int) *Block[T] {
	assert(capacity >= 0, "block capacity must not be negative")
	return &Block[T]{slots: make([]T, capacity)}
}

// Cap returns the fixed slot capacity.
func (b *Block[T]) Cap() int {
	return len(b.slots)
}

// PlaceAt copy-constructs v into slot i.
func (b *Block[T]) PlaceAt(i int, v T) {
	assert(i >= 0 && i < len(b.slots), "PlaceAt slot index out of range")
	b.slots[i] = v
}

// EmplaceAt constructs a value directly inside slot i. The slot is reset to
// the zero value before init runs, so init starts from a clean slate even if
// the slot held moved-from garbage.
func (b *Block[T]) EmplaceAt(i int, init func(*T)) {
	assert(i >= 0 && i < len(b.slots), "EmplaceAt slot index out of range")
	var zero T
	b.slots[i] = zero
	if init != nil {
		init(&b.slots[i])
	}
}

// At returns the value in slot i.
func (b *Block[T]) At(i int) T {
	assert(i >= 0 && i < len(b.slots), "At slot index out of range")
	return b.slots[i]
}

// Ptr returns a pointer to slot i. The pointer stays valid for the lifetime
// of the block; slots never relocate.
func (b *Block[T]) Ptr(i int) *T {
	assert(i >= 0 && i < len(b.slots), "Ptr slot index out of range")
	return &b.slots[i]
}

// SetAt overwrites slot i with v.
func (b *Block[T]) SetAt(i int, v T) {
	assert(i >= 0 && i < len(b.slots), "SetAt slot index out of range")
	b.slots[i] = v
}

// MoveAt move-assigns the value of slot src into slot dst. The source slot is
// cleared to the zero value, i.e. left in moved-from state.
func (b *Block[T]) MoveAt(dst, src int) {
	assert(dst >= 0 && dst < len(b.slots), "MoveAt dst index out of range")
	assert(src >= 0 && src < len(b.slots), "MoveAt src index out of range")
	if dst == src {
		return
	}
	var zero T
	b.slots[dst] = b.slots[src]
	b.slots[src] = zero
}

// DropAt destroys the value in slot i: the drop hook (if any) observes the
// value, then the slot is cleared so the GC can reclaim referenced memory.
func (b *Block[T]) DropAt(i int, drop func(T)) {
	assert(i >= 0 && i < len(b.slots), "DropAt slot index out of range")
	if drop != nil {
		drop(b.slots[i])
	}
	b.ClearAt(i)
}

// ClearAt returns slot i to the uninitialized state without running a drop
// hook. Used for slots whose value has been moved elsewhere.
func (b *Block[T]) ClearAt(i int) {
	assert(i >= 0 && i < len(b.slots), "ClearAt slot index out of range")
	var zero T
	b.slots[i] = zero
}

// CopyFrom element-wise copies the first n slots of src into the receiver.
// Both blocks must have capacity for n slots.
func (b *Block[T]) CopyFrom(src *Block[T], n int) {
	assert(src != nil, "CopyFrom called with nil source block")
	assert(n >= 0 && n <= len(b.slots) && n <= len(src.slots),
		"CopyFrom count exceeds block capacity")
	copy(b.slots[:n], src.slots[:n])
}

// Footprint returns the byte size of the slot array, including alignment
// padding between elements.
func (b *Block[T]) Footprint() uintptr {
	var zero T
	return unsafe.Sizeof(zero) * uintptr(len(b.slots))
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
