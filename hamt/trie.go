package hamt

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/aglyzov/go-hamt/alloc"
)

type status uint8

const (
	notFound  status = iota // node is the branch missing the slot
	found                   // node is the leaf holding the key
	collision               // node is a leaf holding a different key
)

// result of a search. Pointers are only valid until the next mutation.
type result[K comparable, V any] struct {
	parent      *Node[K, V]
	grandparent *Node[K, V]
	node        *Node[K, V]
	status      status
}

// Trie is a Hash Array Mapped Trie. The zero value is not usable, call New.
type Trie[K comparable, V any] struct {
	root   []Node[K, V] // one-slot allocation holding the root branch
	size   int
	alloc  alloc.Allocator[Node[K, V]]
	hasher Hasher[K]
	logger *slog.Logger
}

// New returns an empty Trie. The root branch is allocated on first insertion.
func New[K comparable, V any](opts ...Option[K, V]) *Trie[K, V] {
	o := defaultOptions[K, V]()

	for _, opt := range opts {
		opt(&o)
	}

	return &Trie[K, V]{
		alloc:  o.alloc,
		hasher: o.hasher,
		logger: o.logger,
	}
}

// Len returns the number of key-value pairs in the trie.
func (t *Trie[K, V]) Len() int {
	return t.size
}

func (t *Trie[K, V]) top() *Node[K, V] {
	return &t.root[0]
}

// Get returns the value associated with the key.
func (t *Trie[K, V]) Get(key K) (V, bool) {
	var zero V

	if t.root == nil {
		return zero, false
	}

	cur := newCursor(key, t.hasher)

	if res := t.find(t.top(), key, &cur); res.status == found {
		return res.node.value, true
	}

	return zero, false
}

// Insert associates the value with the key, replacing a previous value.
func (t *Trie[K, V]) Insert(key K, value V) {
	if t.root == nil {
		t.root = t.alloc.Alloc(1) // a zero Node is an empty branch
	}

	cur := newCursor(key, t.hasher)

	t.insertFrom(key, value, &cur)
}

// All returns an iterator over every key-value pair. The order is
// unspecified. The trie must not be modified during iteration.
func (t *Trie[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root != nil {
			t.walk(t.top(), yield)
		}
	}
}

// Release frees every branch array and the root. The trie stays usable.
func (t *Trie[K, V]) Release() {
	if t.root == nil {
		return
	}

	t.logger.Debug("hamt: releasing trie", "size", t.size)

	t.release(t.top())
	t.alloc.Free(t.root)

	t.root = nil
	t.size = 0
}

// search descends from node following the cursor, which is left at the
// level of the returned parent.
func (t *Trie[K, V]) search(node *Node[K, V], key K, cur *cursor[K], grandparent *Node[K, V]) result[K, V] {
	idx := cur.index()

	if !node.has(idx) {
		return result[K, V]{parent: node, grandparent: grandparent, node: node, status: notFound}
	}

	kid := node.kid(idx)

	if node.hasLeaf(idx) {
		if kid.key == key {
			return result[K, V]{parent: node, grandparent: grandparent, node: kid, status: found}
		}

		return result[K, V]{parent: node, grandparent: grandparent, node: kid, status: collision}
	}

	return t.search(kid, key, cur.next(), node)
}

// find looks the key up below start. Every key owns a distinct digit stream,
// so a leaf of another key sitting on the key's path means the key is absent:
// re-derived generations are already part of the stream the cursor follows.
func (t *Trie[K, V]) find(start *Node[K, V], key K, cur *cursor[K]) result[K, V] {
	res := t.search(start, key, cur, nil)

	if res.status == collision {
		res.status = notFound
	}

	return res
}

func (t *Trie[K, V]) insertFrom(key K, value V, cur *cursor[K]) {
	res := t.search(t.top(), key, cur, nil)

	switch res.status {
	case found:
		res.node.value = value
	case notFound:
		t.insertInBranch(res.node, cur, key, value)
		t.size++
	case collision:
		t.convert(res.node, res.parent, cur, key, value)
		t.size++
	}
}

func (t *Trie[K, V]) insertInBranch(branch *Node[K, V], cur *cursor[K], key K, value V) {
	var (
		idx    = cur.index()
		bitmap = branch.bitmap | 1<<idx
		pos    = rank(bitmap, idx)
	)

	t.extend(branch, pos)

	branch.bitmap = bitmap
	branch.leafmap |= 1 << idx
	branch.kids[pos].setLeaf(key, value)
}

// convert replaces the leaf colliding with key by a chain of branches that
// ends where the digit streams of both keys diverge.
func (t *Trie[K, V]) convert(leaf, parent *Node[K, V], cur *cursor[K], key K, value V) {
	var (
		prev  = *leaf
		other = cur.at(prev.key)
		probe = other
		gen   = cur.gen
	)

	if res := t.search(parent, prev.key, &probe, nil); res.status != found || res.node != leaf {
		panic(fmt.Sprintf("hamt: leaf %v is not reachable from its own branch", prev.key))
	}

	parent.leafmap &^= 1 << cur.index() // the slot becomes a branch

	var (
		node   = leaf
		newIdx = cur.next().index()
		oldIdx = other.next().index()
	)

	for newIdx == oldIdx {
		kids := t.alloc.Alloc(1)

		node.setBranch(kids, 1<<newIdx, 0)
		node = &kids[0]

		newIdx = cur.next().index()
		oldIdx = other.next().index()
	}

	var (
		kids   = t.alloc.Alloc(2)
		bitmap = uint32(1)<<newIdx | uint32(1)<<oldIdx
	)

	node.setBranch(kids, bitmap, bitmap)
	kids[rank(bitmap, oldIdx)].setLeaf(prev.key, prev.value)
	kids[rank(bitmap, newIdx)].setLeaf(key, value)

	if cur.gen != gen {
		t.logger.Debug("hamt: collision split across hash generations",
			"depth", cur.depth(),
			"generation", cur.gen,
		)
	}
}

// extend grows the branch array by one hole at pos.
func (t *Trie[K, V]) extend(branch *Node[K, V], pos int) {
	var (
		old  = branch.kids
		kids = t.alloc.Alloc(len(old) + 1)
	)

	copy(kids[:pos], old[:pos])
	copy(kids[pos+1:], old[pos:])

	if len(old) > 0 {
		t.alloc.Free(old)
	}

	branch.kids = kids
}

// shrink drops the element at pos from the branch array, freeing the array
// when nothing is left.
func (t *Trie[K, V]) shrink(branch *Node[K, V], pos int) {
	old := branch.kids

	if len(old) == 1 {
		t.alloc.Free(old)
		branch.kids = nil

		return
	}

	kids := t.alloc.Alloc(len(old) - 1)

	copy(kids[:pos], old[:pos])
	copy(kids[pos:], old[pos+1:])

	t.alloc.Free(old)

	branch.kids = kids
}

func (t *Trie[K, V]) release(branch *Node[K, V]) {
	for idx := uint32(0); idx < branching; idx++ {
		if branch.has(idx) && !branch.hasLeaf(idx) {
			t.release(branch.kid(idx))
		}
	}

	if len(branch.kids) > 0 {
		t.alloc.Free(branch.kids)
	}

	branch.setBranch(nil, 0, 0)
}

func (t *Trie[K, V]) walk(branch *Node[K, V], yield func(K, V) bool) bool {
	for idx := uint32(0); idx < branching; idx++ {
		if !branch.has(idx) {
			continue
		}

		kid := branch.kid(idx)

		if branch.hasLeaf(idx) {
			if !yield(kid.key, kid.value) {
				return false
			}
		} else if !t.walk(kid, yield) {
			return false
		}
	}

	return true
}
