package hamt

import "fmt"

// Remove deletes the key. It returns ErrEmpty if nothing was ever inserted
// (or the trie was released) and ErrNotFound if the key is absent.
func (t *Trie[K, V]) Remove(key K) error {
	if t.root == nil {
		return ErrEmpty
	}

	cur := newCursor(key, t.hasher)
	res := t.find(t.top(), key, &cur)

	if res.status != found {
		return ErrNotFound
	}

	var (
		parent = res.parent
		idx    = cur.index()
		pos    = rank(parent.bitmap, idx)
	)

	parent.bitmap &^= 1 << idx
	parent.leafmap &^= 1 << idx
	t.size--

	if size(parent.bitmap) == 1 && parent.leafmap != 0 && parent != t.top() {
		// a lone leaf must not hang below a branch of its own
		t.fold(key, parent, res.grandparent, parent.kids[1-pos])

		return nil
	}

	t.shrink(parent, pos)

	return nil
}

// fold collapses parent, together with the run of single-occupant branches
// directly above it, into the surviving leaf. The chain is replaced inside
// the nearest ancestor that still has other occupants (or the root).
func (t *Trie[K, V]) fold(key K, parent, grandparent *Node[K, V], survivor Node[K, V]) {
	var (
		chain [maxDepth]*Node[K, V]
		slots [maxDepth]uint32
		depth int
		node  = t.top()
		cur   = newCursor(key, t.hasher)
	)

	for node != parent {
		idx := cur.index()

		if !node.has(idx) || node.hasLeaf(idx) {
			panic(fmt.Sprintf("hamt: removal path of %v is broken at depth %d", key, depth))
		}

		chain[depth], slots[depth] = node, idx
		depth++

		node = node.kid(idx)
		cur.next()
	}

	if depth == 0 || chain[depth-1] != grandparent {
		panic(fmt.Sprintf("hamt: removal path of %v does not lead through its grandparent", key))
	}

	i := depth - 1

	for i > 0 && size(chain[i].bitmap) == 1 {
		i--
	}

	var (
		anchor = chain[i]
		slot   = slots[i]
		top    = anchor.kid(slot)
		dead   [maxDepth][]Node[K, V]
		ndead  int
	)

	for n := top; ; n = &n.kids[0] {
		dead[ndead] = n.kids
		ndead++

		if n == parent {
			break
		}
	}

	top.setLeaf(survivor.key, survivor.value)
	anchor.leafmap |= 1 << slot

	for _, kids := range dead[:ndead] {
		t.alloc.Free(kids)
	}

	t.logger.Debug("hamt: folded branch chain",
		"depth", i+1,
		"levels", ndead,
	)
}
