package hamt

import (
	"log/slog"

	"github.com/aglyzov/go-hamt/alloc"
)

type options[K comparable, V any] struct {
	alloc  alloc.Allocator[Node[K, V]]
	hasher Hasher[K]
	logger *slog.Logger
}

// Option configures a Trie at construction.
type Option[K comparable, V any] func(*options[K, V])

// WithAllocator sets the allocator for branch arrays and the root.
//
// If nil is passed, alloc.Heap is used.
func WithAllocator[K comparable, V any](a alloc.Allocator[Node[K, V]]) Option[K, V] {
	return func(o *options[K, V]) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithHasher sets the hash function. It must honour the Hasher contract for
// the whole life of the trie.
//
// If nil is passed, a SeedHasher with a random seed is used.
func WithHasher[K comparable, V any](h Hasher[K]) Option[K, V] {
	return func(o *options[K, V]) {
		if h != nil {
			o.hasher = h
		}
	}
}

// WithLogger sets the logger for structural diagnostics (Debug level).
//
// If nil is passed, logs are discarded.
func WithLogger[K comparable, V any](l *slog.Logger) Option[K, V] {
	return func(o *options[K, V]) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions[K comparable, V any]() options[K, V] {
	return options[K, V]{
		alloc:  alloc.Heap[Node[K, V]]{},
		hasher: NewSeedHasher[K](),
		logger: slog.New(slog.DiscardHandler),
	}
}
