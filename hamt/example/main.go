package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aglyzov/go-hamt/alloc"
	"github.com/aglyzov/go-hamt/hamt"
)

func main() {
	var (
		logger  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		tracing = alloc.NewTracing[hamt.Node[string, int]](nil)
		trie    = hamt.New[string, int](
			hamt.WithAllocator[string, int](tracing),
			hamt.WithHasher[string, int](hamt.NewMurmur3Hasher[string](0x5eed)),
			hamt.WithLogger[string, int](logger),
		)
	)

	for i, word := range []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"} {
		trie.Insert(word, i)
	}

	trie.Insert("echo", 42) // replace

	if val, ok := trie.Get("echo"); ok {
		fmt.Printf("echo -> %v\n", val)
	}

	if err := trie.Remove("bravo"); err != nil {
		fmt.Printf("remove: %v\n", err)
	}

	if err := trie.Remove("zulu"); err != nil {
		fmt.Printf("remove zulu: %v\n", err)
	}

	if err := trie.Dump(os.Stdout); err != nil {
		fmt.Printf("dump: %v\n", err)
	}

	for key, val := range trie.All() {
		fmt.Printf("%s = %d\n", key, val)
	}

	fmt.Printf("len: %d, bytes: %d, arrays: %d\n", trie.Len(), tracing.Bytes(), tracing.Live())

	trie.Release()

	fmt.Printf("after release: bytes: %d\n", tracing.Bytes())
}
