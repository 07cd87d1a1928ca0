package alloc

import (
	"fmt"
	"unsafe"
)

// Tracing wraps another Allocator and keeps a ledger of live arrays.
//
// Freeing an array that was never allocated (or was already freed), or
// freeing it with a different length, is a programming error and panics.
type Tracing[T any] struct {
	inner  Allocator[T]
	live   map[*T]int // first element -> length
	bytes  int
	allocs int
	frees  int
}

// NewTracing returns a Tracing allocator on top of inner (Heap if nil).
func NewTracing[T any](inner Allocator[T]) *Tracing[T] {
	if inner == nil {
		inner = Heap[T]{}
	}

	return &Tracing[T]{
		inner: inner,
		live:  make(map[*T]int),
	}
}

func (tr *Tracing[T]) Alloc(n int) []T {
	if n <= 0 {
		panic(fmt.Sprintf("alloc: invalid allocation of %d elements", n))
	}

	s := tr.inner.Alloc(n)

	tr.live[&s[0]] = n
	tr.bytes += n * elemSize[T]()
	tr.allocs++

	return s
}

func (tr *Tracing[T]) Free(s []T) {
	if len(s) == 0 {
		panic("alloc: free of an empty array")
	}

	n, ok := tr.live[&s[0]]

	switch {
	case !ok:
		panic(fmt.Sprintf("alloc: free of unallocated memory %p", &s[0]))
	case n != len(s):
		panic(fmt.Sprintf("alloc: free of %p with wrong size: allocated %d, freed %d", &s[0], n, len(s)))
	}

	delete(tr.live, &s[0])
	tr.bytes -= n * elemSize[T]()
	tr.frees++

	tr.inner.Free(s)
}

// Bytes returns the number of bytes currently allocated.
func (tr *Tracing[T]) Bytes() int {
	return tr.bytes
}

// Live returns the number of arrays currently allocated.
func (tr *Tracing[T]) Live() int {
	return len(tr.live)
}

// Allocs returns the total number of Alloc calls so far.
func (tr *Tracing[T]) Allocs() int {
	return tr.allocs
}

// Frees returns the total number of Free calls so far.
func (tr *Tracing[T]) Frees() int {
	return tr.frees
}

// ElemSize returns the size in bytes of one element of T.
func ElemSize[T any]() int {
	return elemSize[T]()
}

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
