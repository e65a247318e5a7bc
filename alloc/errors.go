package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that no free block was large enough and bump
	// allocation would run past the end of the arena.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrInvalidHandle indicates a handle that matches no block in the table.
	ErrInvalidHandle = errors.New("alloc: invalid handle")

	// ErrDoubleFree indicates a free of an already free block (Config.StrictFree only).
	// It is always reported together with ErrInvalidHandle.
	ErrDoubleFree = errors.New("alloc: block already free")

	// ErrInvalidSize indicates a zero or negative allocation request.
	ErrInvalidSize = errors.New("alloc: size must be positive")

	// ErrBadConfig indicates an unusable Config (e.g. non-positive capacity).
	ErrBadConfig = errors.New("alloc: bad config")
)
