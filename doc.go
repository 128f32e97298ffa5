/*
Package faststorage implements a hybrid sequence container.

A Storage keeps its first N elements in a fixed-capacity inline block and
spills any further elements into a lazily created, growable overflow region.
Both regions are hidden behind a single logical index space [0, size).

The container targets workloads where the element count usually stays at or
below N: the common case then touches only the pre-allocated inline block,
while larger sizes keep working by growing the overflow region on the heap.

	Operation     |  Storage (i < N)  |  Storage (i >= N)
	--------------+-------------------+------------------
	Push/Pop      |  O(1)             |  O(1) amortized
	Index         |  O(1)             |  O(1)
	Erase         |  O(N)             |  O(size)
	Iterate       |  O(size)          |  O(size)

Erasing an inline index shifts at most N elements, a fixed small constant,
and pulls the first overflow element across the region boundary when one
exists. Erasing an overflow index delegates to the overflow region's own
removal. This asymmetry is the intended trade-off of the hybrid design.

A Storage is not goroutine-safe. Sharing one across goroutines requires
external synchronization.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, the faststorage authors

Please refer to the License file in the repository root.
*/
package faststorage

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer aliases T for use inside generic methods, where a type parameter
// named T shadows the package-level tracer function.
var tracer = T

// StorageError is an error type for the faststorage module.
type StorageError string

func (e StorageError) Error() string {
	return string(e)
}

// ErrStorageEmpty is flagged by checked accessors on an empty container.
const ErrStorageEmpty = StorageError("storage is empty")

// ErrIndexOutOfBounds is flagged whenever a checked index is not less than
// the current size of the container.
const ErrIndexOutOfBounds = StorageError("index out of bounds")

// ErrInvalidConfig signals an invalid container configuration.
const ErrInvalidConfig = StorageError("invalid storage configuration")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
