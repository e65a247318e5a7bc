package alloc

// Handle identifies an allocation. Its value is the start offset of the block.
type Handle int

// NilHandle is returned together with every allocation error.
const NilHandle Handle = -1

// DefaultCapacity is the arena size used when Config.Capacity is left at zero.
const DefaultCapacity = 1024

// Block is a metadata record describing one contiguous used or freed region.
type Block struct {
	Start int  `json:"start"` // Offset of the first byte
	Size  int  `json:"size"`  // Length in bytes
	Free  bool `json:"free"`  // True once freed, false while handed out
}

// End returns the offset one past the last byte of the block.
func (b Block) End() int { return b.Start + b.Size }

// Config defines the arena size and allocation policy.
type Config struct {
	// Capacity is the arena size in bytes.
	Capacity int

	// SplitOnReuse shrinks a reused free block to the requested size and keeps the
	// remainder as a separate free block. Off by default: reused blocks keep their
	// full size.
	SplitOnReuse bool

	// StrictFree makes freeing an already free block fail with ErrInvalidHandle
	// (and ErrDoubleFree). Off by default: a double free succeeds and changes nothing.
	StrictFree bool
}

// DefaultConfig is a 1024-byte arena with reuse-without-split and idempotent free.
var DefaultConfig = Config{
	Capacity: DefaultCapacity,
}

// Stats holds allocator call counters for diagnostics and tests.
type Stats struct {
	AllocCalls   int // Total Alloc() calls
	ReuseHits    int // Allocations served from a free block
	BumpAllocs   int // Allocations appended after the highest block
	OutOfMemory  int // Allocations rejected with ErrOutOfMemory
	FreeCalls    int // Total Free() calls
	InvalidFrees int // Frees rejected with ErrInvalidHandle
	DoubleFrees  int // Frees of blocks that were already free
	Merges       int // Block pairs merged by coalescing
	Splits       int // Reused blocks split (SplitOnReuse only)
}
