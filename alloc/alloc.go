// Package alloc defines the allocation capability used by the containers of
// this module together with two implementations: Heap, which defers to the
// Go runtime, and Tracing, which accounts every allocation and catches
// mismatched frees.
//
// Allocation failure is fatal: an Allocator never returns an error, it
// panics (or lets the runtime abort) when memory cannot be obtained.
package alloc

// Allocator hands out and takes back contiguous arrays of T.
//
// Alloc must return a slice of exactly n zeroed elements (n > 0).
// Free receives a slice previously returned by Alloc, unchanged in length.
type Allocator[T any] interface {
	Alloc(n int) []T
	Free(s []T)
}

// Heap allocates from the Go heap. Free is a no-op: the garbage collector
// reclaims arrays once nothing references them.
type Heap[T any] struct{}

func (Heap[T]) Alloc(n int) []T {
	return make([]T, n)
}

func (Heap[T]) Free([]T) {}
