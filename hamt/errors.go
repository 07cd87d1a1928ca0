package hamt

import "errors"

var (
	// ErrEmpty is returned when removing from a trie that holds nothing.
	ErrEmpty = errors.New("hamt: empty trie")

	// ErrNotFound is returned when removing a key the trie does not hold.
	ErrNotFound = errors.New("hamt: key not found")
)
