// Package alloc simulates a user-space heap allocator over a fixed-size byte arena.
//
// # Overview
//
// The allocator tracks every region it has ever handed out as a Block record in an
// ordered table. The table is the single source of truth for occupancy: the arena
// itself only bounds how far the table may grow.
//
// # Allocator Interface
//
//   - Alloc(size): Reuse the first free block that is large enough, or bump-allocate
//     a new block after the highest used offset
//   - Free(h): Mark the block starting at h as free and merge adjacent free blocks
//   - Region(h): Return the arena bytes owned by a live block
//   - Blocks(): Copy of the block table for read-only consumers (see package report)
//
// # Allocation Strategy
//
// Allocation is first-fit: the table is scanned in ascending start order and the
// first free block with size >= request wins. The reused block is NOT shrunk to the
// request by default, so a reused block may keep capacity the caller never asked
// for. Set Config.SplitOnReuse to carve the unused tail off as a new free block.
//
// When no free block fits, the request is appended at the end of the highest block
// (bump allocation). Freed gaps in the middle of the table are only reachable through
// the first-fit path, and bytes once covered by a block are never returned to the
// "no record" state.
//
// # Coalescing
//
// Every Free runs a left-to-right pass that merges consecutive free blocks whose
// ranges touch. After Free returns no two adjacent table entries are both free and
// contiguous.
//
// # Usage Example
//
//	a, err := alloc.New(nil) // 1024-byte arena
//	if err != nil {
//	    return err
//	}
//
//	h, err := a.Alloc(64)
//	if errors.Is(err, alloc.ErrOutOfMemory) {
//	    // arena exhausted, state unchanged
//	}
//
//	if err := a.Free(h); err != nil {
//	    // alloc.ErrInvalidHandle
//	}
//
// # Handles
//
// A Handle is the start offset of its block. It is never a memory address and stays
// valid until the block is freed (or absorbed into a neighbor by coalescing).
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
package alloc
