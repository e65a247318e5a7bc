package alloc

import (
	"errors"
	"fmt"
)

// ErrCorrupt indicates that the block table violates one of its invariants.
var ErrCorrupt = errors.New("alloc: block table corrupt")

// Check verifies the table invariants: ascending starts, no overlap, every block
// inside the arena, used bytes within capacity and no mergeable free neighbors.
// All violations are reported, joined into one error.
func (a *Allocator) Check() error {
	var errs []error
	capacity := a.arena.Capacity()
	used := 0

	for i, b := range a.table.blocks {
		if b.Start < 0 || b.Size < 0 {
			errs = append(errs, fmt.Errorf("%w: block %d has negative start or size (%d, %d)",
				ErrCorrupt, i, b.Start, b.Size))
		}
		if !a.arena.Fits(b.Start, b.Size) {
			errs = append(errs, fmt.Errorf("%w: block %d [%d, %d) exceeds capacity %d",
				ErrCorrupt, i, b.Start, b.End(), capacity))
		}
		if !b.Free {
			used += b.Size
		}
		if i == 0 {
			continue
		}

		prev := a.table.blocks[i-1]
		if prev.Start >= b.Start {
			errs = append(errs, fmt.Errorf("%w: block %d start %d not after block %d start %d",
				ErrCorrupt, i, b.Start, i-1, prev.Start))
		}
		if prev.End() > b.Start {
			errs = append(errs, fmt.Errorf("%w: block %d [%d, %d) overlaps block %d at %d",
				ErrCorrupt, i-1, prev.Start, prev.End(), i, b.Start))
		}
		if prev.Free && b.Free && prev.End() == b.Start {
			errs = append(errs, fmt.Errorf("%w: free blocks %d and %d are contiguous but not merged",
				ErrCorrupt, i-1, i))
		}
	}

	if used > capacity {
		errs = append(errs, fmt.Errorf("%w: used bytes %d exceed capacity %d", ErrCorrupt, used, capacity))
	}

	return errors.Join(errs...)
}
