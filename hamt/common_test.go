package hamt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-hamt/alloc"
)

type intTrie = Trie[uint64, int]
type intNode = Node[uint64, int]

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

func mixHash(key uint64, gen uint32) uint32 {
	return uint32(mix(key + uint64(gen)*0x9e3779b97f4a7c15))
}

// mixHasher spreads keys well in every generation.
var mixHasher = HasherFunc[uint64](mixHash)

// collidingHasher maps every key to the same generation 0 hash.
var collidingHasher = HasherFunc[uint64](func(key uint64, gen uint32) uint32 {
	if gen == 0 {
		return 0xDEADBEEF
	}
	return mixHash(key, gen)
})

// clusterHasher puts keys into four generation 0 clusters.
var clusterHasher = HasherFunc[uint64](func(key uint64, gen uint32) uint32 {
	if gen == 0 {
		return uint32(key % 4)
	}
	return mixHash(key, gen)
})

// constHasher ignores both the key and the generation.
var constHasher = HasherFunc[uint64](func(uint64, uint32) uint32 {
	return 7
})

func newTraced(h Hasher[uint64]) (*intTrie, *alloc.Tracing[intNode]) {
	tracing := alloc.NewTracing[intNode](nil)

	tr := New[uint64, int](
		WithAllocator[uint64, int](tracing),
		WithHasher[uint64, int](h),
	)

	return tr, tracing
}

var nodeSize = alloc.ElemSize[intNode]()

// checkInvariants validates the shape of the whole trie.
func checkInvariants[K comparable, V any](t *testing.T, tr *Trie[K, V]) {
	t.Helper()

	if tr.root == nil {
		require.Zero(t, tr.Len())
		return
	}

	require.Equal(t, tr.Len(), countLeaves(t, tr.top(), true))
}

func countLeaves[K comparable, V any](t *testing.T, branch *Node[K, V], isRoot bool) int {
	t.Helper()

	require.Equal(t, size(branch.bitmap), len(branch.kids), "array length must match the bitmap")
	require.Zero(t, branch.leafmap&^branch.bitmap, "leafmap must be a subset of bitmap")

	var total int

	for idx := uint32(0); idx < branching; idx++ {
		switch {
		case !branch.has(idx):
		case branch.hasLeaf(idx):
			total++
		default:
			total += countLeaves(t, branch.kid(idx), false)
		}
	}

	if !isRoot {
		require.GreaterOrEqual(t, total, 2, "a nested branch must hold at least two leaves")
	}

	return total
}

// maxLeafDepth returns the number of branches above the deepest leaf.
func maxLeafDepth[K comparable, V any](branch *Node[K, V]) int {
	var deepest int

	for idx := uint32(0); idx < branching; idx++ {
		switch {
		case !branch.has(idx):
		case branch.hasLeaf(idx):
			if deepest < 1 {
				deepest = 1
			}
		default:
			if d := maxLeafDepth(branch.kid(idx)) + 1; d > deepest {
				deepest = d
			}
		}
	}

	return deepest
}
