// Package hamt defines an implementation of a Hash Array Mapped Trie: an
// associative container mixing a hash table and a radix tree.
//
// A key is addressed by successive 5-bit digits of its hash. Each branch has
// 32 logical slots but stores only the occupied ones, in a contiguous array
// ordered by slot.
//
// Branch layout:
// -------------
//
//   - kids    - array of exactly popcount(bitmap) child Nodes;
//   - bitmap  - bit i set <=> logical slot i is occupied;
//   - leafmap - bit i set <=> slot i holds a leaf (subset of bitmap).
//
// The physical index of slot i is popcount(bitmap & (1<<i - 1)). A Node does
// not know whether it is a leaf or a branch; its parent's leafmap does.
//
// Addressing:
// ----------
//
//	gen 0:  hash(key, 0)  [ 2:31-30 | 5:29-25 | ... | 5:09-05 | 5:04-00 ]
//	                         digit 6    digit 5         digit 1   digit 0
//	gen 1:  hash(key, 1)  [ ... ]                         digits 7..13
//	...
//
// When the 32 bits of a generation are used up the hash is re-derived with
// the next generation number, so every key owns an unbounded, deterministic
// digit stream. Hashers must return unrelated values for different
// generations of the same key.
//
// Example trie:
// ------------
//
//	[root bmp:..0100_0101 lmp:..0000_0101]
//	  +-- slot 0: [leaf k1]
//	  +-- slot 2: [leaf k2]
//	  `-- slot 6: [branch bmp:..1_0000_0001 lmp:..1_0000_0001]
//	                +-- slot 0: [leaf k3]
//	                `-- slot 8: [leaf k4]
//
// A Trie is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every access, reads included.
package hamt
