package hamt

import (
	"github.com/hideo55/go-popcount"
)

const (
	branching    = 32 // logical slots per branch
	bitsPerLevel = 5
	levelMask    = branching - 1 // 0b_11111
	maxShift     = 30            // last digit of a 32-bit hash holds 2 bits

	levelsPerGeneration = maxShift/bitsPerLevel + 1 // 7

	// maxGenerations caps how many times a key's hash may be re-derived.
	// Distinct keys still sharing every digit after that many generations
	// mean the hasher ignores the generation number.
	maxGenerations = 8

	maxDepth = levelsPerGeneration * maxGenerations
)

// size returns the number of occupied slots of a bitmap.
func size(bitmap uint32) int {
	return int(popcount.Count(uint64(bitmap)))
}

// rank returns the physical array index of the logical slot idx.
func rank(bitmap, idx uint32) int {
	return int(popcount.Count(uint64(bitmap & (1<<idx - 1))))
}
