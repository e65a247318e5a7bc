// Package report derives usage statistics and a symbolic heap map from an
// allocator block table.
//
// All functions are read-only over the blocks they are given; pass the result
// of alloc.Allocator.Blocks().
package report

import (
	"fmt"

	"github.com/joshuapare/heapsim/alloc"
)

// Usage is the aggregate view of an arena.
type Usage struct {
	TotalCapacity int `json:"total_capacity"`
	UsedBytes     int `json:"used_bytes"`
	FreeBytes     int `json:"free_bytes"` // TotalCapacity - UsedBytes, includes never-allocated space

	UsedBlocks   int `json:"used_blocks"`
	FreeBlocks   int `json:"free_blocks"`
	LargestFree  int `json:"largest_free_block"` // Largest free record (0 if none)
	Unallocated  int `json:"unallocated"`        // Bytes past the last block
	FreeInBlocks int `json:"free_in_blocks"`     // Sum over free records
}

// Status sums used block sizes into UsedBytes. FreeBytes is derived from the
// capacity, not summed over free blocks, so the untouched tail counts as free.
func Status(blocks []alloc.Block, capacity int) Usage {
	u := Usage{TotalCapacity: capacity}

	end := 0
	for _, b := range blocks {
		if b.End() > end {
			end = b.End()
		}
		if b.Size == 0 {
			continue
		}
		if b.Free {
			u.FreeBlocks++
			u.FreeInBlocks += b.Size
			u.LargestFree = max(u.LargestFree, b.Size)
			continue
		}
		u.UsedBlocks++
		u.UsedBytes += b.Size
	}

	u.FreeBytes = capacity - u.UsedBytes
	u.Unallocated = max(capacity-end, 0)
	return u
}

// Line is one entry of the per-block listing.
type Line struct {
	Start int
	Size  int
	Free  bool
}

// String renders the line as "Used block: offset 0 size 64".
func (l Line) String() string {
	state := "Used"
	if l.Free {
		state = "Free"
	}
	return fmt.Sprintf("%s block: offset %d size %d", state, l.Start, l.Size)
}

// Describe lists every non-empty block in table order.
func Describe(blocks []alloc.Block) []Line {
	lines := make([]Line, 0, len(blocks))
	for _, b := range blocks {
		if b.Size == 0 {
			continue
		}
		lines = append(lines, Line{Start: b.Start, Size: b.Size, Free: b.Free})
	}
	return lines
}
