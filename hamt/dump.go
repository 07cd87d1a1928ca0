package hamt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dump writes a human readable picture of the trie structure to w.
func (t *Trie[K, V]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if t.root == nil {
		fmt.Fprintln(bw, "<hamt|nil>")
	} else {
		fmt.Fprintf(bw, "<hamt|size:%d>\n", t.size)
		dumpBranch(bw, t.top(), 0, "root")
	}

	return bw.Flush()
}

func dumpBranch[K comparable, V any](w io.Writer, branch *Node[K, V], indent int, label string) {
	pad := strings.Repeat("  ", indent)

	fmt.Fprintf(w, "%s+-- %s: branch|bmp:%032b|lmp:%032b\n", pad, label, branch.bitmap, branch.leafmap)

	for idx := uint32(0); idx < branching; idx++ {
		if !branch.has(idx) {
			continue
		}

		kid := branch.kid(idx)

		if branch.hasLeaf(idx) {
			fmt.Fprintf(w, "%s  +-- %02d: leaf|%#v|%#v\n", pad, idx, kid.key, kid.value)
		} else {
			dumpBranch(w, kid, indent+1, fmt.Sprintf("%02d", idx))
		}
	}
}
