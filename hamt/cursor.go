package hamt

import "fmt"

// cursor walks the digit stream of a key. It never owns anything.
type cursor[K comparable] struct {
	hash   uint32
	shift  uint32 // 0, 5, ..., 30
	gen    uint32
	key    K
	hasher Hasher[K]
}

func newCursor[K comparable](key K, hasher Hasher[K]) cursor[K] {
	return cursor[K]{
		hash:   hasher.Hash(key, 0),
		key:    key,
		hasher: hasher,
	}
}

// at returns a cursor for key positioned at the same generation and shift.
func (c *cursor[K]) at(key K) cursor[K] {
	hash := c.hash

	if key != c.key {
		hash = c.hasher.Hash(key, c.gen)
	}

	return cursor[K]{
		hash:   hash,
		shift:  c.shift,
		gen:    c.gen,
		key:    key,
		hasher: c.hasher,
	}
}

func (c *cursor[K]) index() uint32 {
	return (c.hash >> c.shift) & levelMask
}

// depth returns the trie level the cursor addresses (the root is 0).
func (c *cursor[K]) depth() int {
	return int(c.gen)*levelsPerGeneration + int(c.shift/bitsPerLevel)
}

// next advances to the following digit, re-deriving the hash with the next
// generation once the current one is exhausted.
func (c *cursor[K]) next() *cursor[K] {
	c.shift += bitsPerLevel

	if c.shift > maxShift {
		c.gen++

		if c.gen >= maxGenerations {
			panic(fmt.Sprintf(
				"hamt: hash of %v exhausted after %d generations; the hasher ignores the generation number",
				c.key, c.gen,
			))
		}

		c.hash = c.hasher.Hash(c.key, c.gen)
		c.shift = 0
	}

	return c
}
