package hamt

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/spaolacci/murmur3"
)

// Hasher maps a key and a generation number to a 32-bit hash.
//
// Hash must be deterministic for every (key, gen) pair during the lifetime of
// a trie, and must return unrelated values for different generations of the
// same key: generation n+1 is consulted once the 32 bits of generation n are
// exhausted. Generation 0 is the key's primary hash.
//
// Two distinct keys must not hash equally in every generation. A trie holding
// keys that still share all digits after maxGenerations (8) generations, as a
// hasher ignoring the key would produce, panics on insertion.
type Hasher[K any] interface {
	Hash(key K, gen uint32) uint32
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc[K any] func(key K, gen uint32) uint32

func (fn HasherFunc[K]) Hash(key K, gen uint32) uint32 {
	return fn(key, gen)
}

// SeedHasher hashes any comparable key with hash/maphash. The generation is
// appended to the hashed bytes, so each generation yields an independent hash.
type SeedHasher[K comparable] struct {
	seed maphash.Seed
}

// NewSeedHasher returns a SeedHasher with a random seed.
func NewSeedHasher[K comparable]() SeedHasher[K] {
	return SeedHasher[K]{seed: maphash.MakeSeed()}
}

func (h SeedHasher[K]) Hash(key K, gen uint32) uint32 {
	var mh maphash.Hash

	mh.SetSeed(h.seed)
	maphash.WriteComparable(&mh, key)

	if gen != 0 {
		var buf [4]byte

		binary.LittleEndian.PutUint32(buf[:], gen)
		_, _ = mh.Write(buf[:])
	}

	sum := mh.Sum64()

	return uint32(sum) ^ uint32(sum>>32)
}

// Murmur3Hasher hashes string and byte-slice keys with 32-bit murmur3. The
// generation is folded into the murmur3 seed.
type Murmur3Hasher[K ~string | ~[]byte] struct {
	seed uint32
}

// NewMurmur3Hasher returns a Murmur3Hasher using seed for generation 0.
func NewMurmur3Hasher[K ~string | ~[]byte](seed uint32) Murmur3Hasher[K] {
	return Murmur3Hasher[K]{seed: seed}
}

func (h Murmur3Hasher[K]) Hash(key K, gen uint32) uint32 {
	return murmur3.Sum32WithSeed([]byte(key), h.seed+gen)
}
