package alloc

import (
	"fmt"

	"github.com/joshuapare/heapsim/internal/buf"
)

// Arena is the fixed-size simulated heap. It is never resized.
type Arena struct {
	data []byte
}

// NewArena creates an arena of capacity bytes.
func NewArena(capacity int) (*Arena, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrBadConfig, capacity)
	}
	return &Arena{data: make([]byte, capacity)}, nil
}

// Capacity returns the arena size in bytes.
func (a *Arena) Capacity() int { return len(a.data) }

// Contains reports whether off is an addressable offset in [0, capacity).
func (a *Arena) Contains(off int) bool {
	return off >= 0 && off < len(a.data)
}

// Fits reports whether [off, off+size) lies inside the arena.
func (a *Arena) Fits(off, size int) bool {
	_, err := buf.CheckRange(len(a.data), off, size)
	return err == nil
}

// Region returns the bytes backing [off, off+size).
func (a *Arena) Region(off, size int) ([]byte, error) {
	if _, err := buf.CheckRange(len(a.data), off, size); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	b, _ := buf.Slice(a.data, off, size)
	return b, nil
}
