package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestAllocator creates an allocator with the given capacity and default policy.
func newTestAllocator(t testing.TB, capacity int) *Allocator {
	t.Helper()
	a, err := New(&Config{Capacity: capacity})
	require.NoError(t, err)
	return a
}

// mustAlloc allocates size bytes and fails the test on error.
func mustAlloc(t testing.TB, a *Allocator, size int) Handle {
	t.Helper()
	h, err := a.Alloc(size)
	require.NoError(t, err, "Alloc(%d)", size)
	return h
}

// usedBytes sums the sizes of all used blocks.
func usedBytes(a *Allocator) int {
	total := 0
	for _, b := range a.table.blocks {
		if !b.Free {
			total += b.Size
		}
	}
	return total
}

// assertInvariants fails the test if the table violates ordering, overlap,
// capacity or coalescing invariants.
func assertInvariants(t testing.TB, a *Allocator) {
	t.Helper()
	require.NoError(t, a.Check())
	require.LessOrEqual(t, usedBytes(a), a.Capacity())
}

// tableWith builds an allocator whose table holds exactly blocks, bypassing Alloc.
// Used to set up layouts (e.g. uncoalesced neighbors) that the public API never produces.
func tableWith(t testing.TB, capacity int, blocks ...Block) *Allocator {
	t.Helper()
	a := newTestAllocator(t, capacity)
	a.table.blocks = append([]Block(nil), blocks...)
	return a
}
