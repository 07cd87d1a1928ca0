package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	a, b uint64
}

func TestHeap_Alloc(t *testing.T) {
	t.Parallel()

	var h Heap[pair]

	s := h.Alloc(3)

	require.Len(t, s, 3)
	assert.Equal(t, pair{}, s[2])

	h.Free(s) // no-op
}

func TestTracing_Accounting(t *testing.T) {
	t.Parallel()

	var (
		tr   = NewTracing[pair](nil)
		size = ElemSize[pair]()
	)

	assert.Equal(t, 16, size)

	s1 := tr.Alloc(1)
	s2 := tr.Alloc(4)

	assert.Equal(t, 5*size, tr.Bytes())
	assert.Equal(t, 2, tr.Live())
	assert.Equal(t, 2, tr.Allocs())

	tr.Free(s2)

	assert.Equal(t, size, tr.Bytes())
	assert.Equal(t, 1, tr.Live())
	assert.Equal(t, 1, tr.Frees())

	tr.Free(s1)

	assert.Zero(t, tr.Bytes())
	assert.Zero(t, tr.Live())
}

func TestTracing_Misuse(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name string
		Run  func(tr *Tracing[pair])
	}{
		{"zero alloc", func(tr *Tracing[pair]) { tr.Alloc(0) }},
		{"empty free", func(tr *Tracing[pair]) { tr.Free(nil) }},
		{"unknown free", func(tr *Tracing[pair]) { tr.Free(make([]pair, 1)) }},
		{"double free", func(tr *Tracing[pair]) {
			s := tr.Alloc(2)
			tr.Free(s)
			tr.Free(s)
		}},
		{"wrong size", func(tr *Tracing[pair]) {
			s := tr.Alloc(3)
			tr.Free(s[:2])
		}},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			tr := NewTracing[pair](Heap[pair]{})

			assert.Panics(t, func() { tcase.Run(tr) })
		})
	}
}
