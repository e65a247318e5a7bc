// Package buf provides overflow-safe offset arithmetic for arena ranges.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// CheckRange validates that the range [offset, offset+length) fits inside a
// region of limit bytes. Returns the end offset if valid, or an error describing
// the specific failure (negative input, overflow or out of bounds).
//
//	end, err := buf.CheckRange(capacity, off, size)
//	if err != nil {
//	    return fmt.Errorf("arena: %w", err)
//	}
func CheckRange(limit, offset, length int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if length < 0 {
		return 0, fmt.Errorf("negative length: %d", length)
	}

	end, ok := AddOverflowSafe(offset, length)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + length=%d", offset, length)
	}
	if end > limit {
		return 0, fmt.Errorf("bounds: end=%d > limit=%d", end, limit)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end:end], true
}
