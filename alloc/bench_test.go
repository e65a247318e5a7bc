package alloc

import (
	"testing"
)

// BenchmarkAlloc_Bump measures bump allocation until the arena is full, then
// starts over with a fresh allocator.
func BenchmarkAlloc_Bump(b *testing.B) {
	a := newTestAllocator(b, 1<<20)

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		size := 64 + (i%64)*2 // 64-190 bytes
		if _, err := a.Alloc(size); err != nil {
			b.StopTimer()
			a = newTestAllocator(b, 1<<20)
			b.StartTimer()
		}
	}
}

// BenchmarkAllocFree_Churn measures the first-fit reuse path: alternating frees
// and allocations over a table of ~1000 blocks.
func BenchmarkAllocFree_Churn(b *testing.B) {
	a := newTestAllocator(b, 1<<20)
	handles := make([]Handle, 0, 1024)
	for range 1024 {
		h, err := a.Alloc(128)
		if err != nil {
			b.Fatal(err)
		}
		handles = append(handles, h)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		j := (i * 7) % len(handles)
		if err := a.Free(handles[j]); err != nil {
			b.Fatal(err)
		}
		h, err := a.Alloc(96)
		if err != nil {
			b.Fatal(err)
		}
		handles[j] = h
	}
}
