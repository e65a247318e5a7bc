package alloc

import (
	"fmt"

	"github.com/joshuapare/heapsim/internal/logger"
)

// Allocator owns an arena and the block table describing it. All mutation goes
// through Alloc and Free.
type Allocator struct {
	arena *Arena
	table blockTable
	cfg   Config

	// Statistics for testing and instrumentation
	stats Stats
}

// New creates an allocator over a fresh arena.
//
// Parameters:
//   - cfg: Arena size and policy (use nil for DefaultConfig; zero Capacity means DefaultCapacity)
func New(cfg *Config) (*Allocator, error) {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	c := *cfg
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}

	arena, err := NewArena(c.Capacity)
	if err != nil {
		return nil, err
	}

	return &Allocator{arena: arena, cfg: c}, nil
}

// Alloc reserves size bytes and returns the handle of the block that now holds them.
//
// A free block found by first-fit is handed back whole unless Config.SplitOnReuse
// is set. On ErrOutOfMemory and ErrInvalidSize the table is left untouched and
// NilHandle is returned.
func (a *Allocator) Alloc(size int) (Handle, error) {
	a.stats.AllocCalls++

	if size <= 0 {
		return NilHandle, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	if i := a.table.findFirstFree(size); i >= 0 {
		b := &a.table.blocks[i]
		b.Free = false
		a.stats.ReuseHits++

		if a.cfg.SplitOnReuse && b.Size > size {
			// The block was coalesced when freed, so its successor is not a
			// contiguous free block and the tail needs no merge.
			tail := Block{Start: b.Start + size, Size: b.Size - size, Free: true}
			b.Size = size
			a.table.insertAt(i+1, tail)
			a.stats.Splits++
		}

		blk := a.table.blocks[i]
		logger.Debug("alloc: reused free block",
			"offset", blk.Start, "requested", size, "size", blk.Size)
		return Handle(blk.Start), nil
	}

	off := a.table.nextBumpOffset()
	if !a.arena.Fits(off, size) {
		a.stats.OutOfMemory++
		logger.Debug("alloc: out of memory",
			"requested", size, "offset", off, "capacity", a.arena.Capacity())
		return NilHandle, fmt.Errorf("%w: need %d bytes at offset %d, capacity %d",
			ErrOutOfMemory, size, off, a.arena.Capacity())
	}

	a.table.append(off, size)
	a.stats.BumpAllocs++
	logger.Debug("alloc: new allocation", "offset", off, "size", size)

	return Handle(off), nil
}

// Free marks the block starting at h as free and coalesces adjacent free blocks.
//
// Freeing an already free block succeeds without changes unless Config.StrictFree
// is set, in which case the error matches both ErrInvalidHandle and ErrDoubleFree.
func (a *Allocator) Free(h Handle) error {
	a.stats.FreeCalls++

	i := a.table.locateByStart(int(h))
	if i < 0 {
		a.stats.InvalidFrees++
		logger.Debug("alloc: free of unknown handle", "handle", int(h))
		return fmt.Errorf("%w: no block starts at offset %d", ErrInvalidHandle, int(h))
	}

	b := &a.table.blocks[i]
	if b.Free {
		a.stats.DoubleFrees++
		if a.cfg.StrictFree {
			a.stats.InvalidFrees++
			return fmt.Errorf("%w: %w at offset %d", ErrInvalidHandle, ErrDoubleFree, b.Start)
		}
		logger.Debug("alloc: block already free", "offset", b.Start)
		return nil
	}

	b.Free = true
	logger.Debug("alloc: freed block", "offset", b.Start, "size", b.Size)

	a.Coalesce()
	return nil
}

// Coalesce merges adjacent free blocks and returns the number of merges made.
// Free already does this; calling it again is a no-op.
func (a *Allocator) Coalesce() int {
	n := a.table.coalesce()
	if n > 0 {
		a.stats.Merges += n
		logger.Debug("alloc: coalesced free blocks", "merges", n, "blocks", len(a.table.blocks))
	}
	return n
}

// Region returns the arena bytes owned by the live block at h. The slice spans
// the full block size, which may exceed the size originally requested.
func (a *Allocator) Region(h Handle) ([]byte, error) {
	if !a.arena.Contains(int(h)) {
		return nil, fmt.Errorf("%w: offset %d outside arena", ErrInvalidHandle, int(h))
	}
	i := a.table.locateByStart(int(h))
	if i < 0 {
		return nil, fmt.Errorf("%w: no block starts at offset %d", ErrInvalidHandle, int(h))
	}
	b := a.table.blocks[i]
	if b.Free {
		return nil, fmt.Errorf("%w: block at offset %d is free", ErrInvalidHandle, b.Start)
	}
	return a.arena.Region(b.Start, b.Size)
}

// Blocks returns a copy of the block table in ascending start order.
func (a *Allocator) Blocks() []Block { return a.table.snapshot() }

// Capacity returns the arena size in bytes.
func (a *Allocator) Capacity() int { return a.arena.Capacity() }

// Config returns the effective configuration.
func (a *Allocator) Config() Config { return a.cfg }

// Stats returns a copy of the allocator counters.
func (a *Allocator) Stats() Stats { return a.stats }
