package hamt

// Node is a single slot of a branch array: either a leaf holding one
// key-value pair or a branch holding a child array. Which one it is lives in
// the parent's leafmap, not in the Node.
type Node[K comparable, V any] struct {
	key   K
	value V

	kids    []Node[K, V] // len(kids) == popcount(bitmap)
	bitmap  uint32
	leafmap uint32
}

func (n *Node[K, V]) has(idx uint32) bool {
	return n.bitmap&(1<<idx) != 0
}

func (n *Node[K, V]) hasLeaf(idx uint32) bool {
	return n.leafmap&(1<<idx) != 0
}

// kid returns the child occupying the logical slot idx.
func (n *Node[K, V]) kid(idx uint32) *Node[K, V] {
	return &n.kids[rank(n.bitmap, idx)]
}

// setLeaf turns the node into a leaf.
func (n *Node[K, V]) setLeaf(key K, value V) {
	*n = Node[K, V]{key: key, value: value}
}

// setBranch turns the node into a branch, dropping any leaf payload.
func (n *Node[K, V]) setBranch(kids []Node[K, V], bitmap, leafmap uint32) {
	*n = Node[K, V]{kids: kids, bitmap: bitmap, leafmap: leafmap}
}
