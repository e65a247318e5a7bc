package alloc

import (
	"cmp"
	"slices"
)

// blockTable is the ordered block list. Entries are sorted by Start and never
// overlap, so the last entry always has the highest End.
type blockTable struct {
	blocks []Block
}

// findFirstFree returns the index of the lowest-start free block with
// Size >= minSize, or -1. This is first-fit, not best-fit.
func (t *blockTable) findFirstFree(minSize int) int {
	for i := range t.blocks {
		if t.blocks[i].Free && t.blocks[i].Size >= minSize {
			return i
		}
	}
	return -1
}

// nextBumpOffset returns the offset just past the highest block (0 when empty).
// Free blocks count too: a trailing free block is only reachable through reuse.
func (t *blockTable) nextBumpOffset() int {
	if len(t.blocks) == 0 {
		return 0
	}
	return t.blocks[len(t.blocks)-1].End()
}

// append adds a used block at the end. Callers pass start == nextBumpOffset().
func (t *blockTable) append(start, size int) {
	t.blocks = append(t.blocks, Block{Start: start, Size: size})
}

// insertAt places b at index i, shifting later entries right.
func (t *blockTable) insertAt(i int, b Block) {
	t.blocks = slices.Insert(t.blocks, i, b)
}

// locateByStart returns the index of the block starting exactly at off, or -1.
func (t *blockTable) locateByStart(off int) int {
	i, found := slices.BinarySearchFunc(t.blocks, off, func(b Block, target int) int {
		return cmp.Compare(b.Start, target)
	})
	if !found {
		return -1
	}
	return i
}

// coalesce merges every run of contiguous free blocks into its first entry and
// returns the number of pairwise merges. The index only advances once the entry
// at i has nothing left to absorb.
func (t *blockTable) coalesce() int {
	merges := 0
	for i := 0; i+1 < len(t.blocks); {
		cur, next := &t.blocks[i], t.blocks[i+1]
		if cur.Free && next.Free && cur.End() == next.Start {
			cur.Size += next.Size
			t.blocks = slices.Delete(t.blocks, i+1, i+2)
			merges++
			continue
		}
		i++
	}
	return merges
}

// snapshot returns a copy safe to hand to callers.
func (t *blockTable) snapshot() []Block {
	return slices.Clone(t.blocks)
}
