package mem

import "errors"

var (
	// ErrOutOfMemory indicates that the underlying allocator could not satisfy a request.
	// Allocate treats it as fatal and panics with an error wrapping this value.
	ErrOutOfMemory = errors.New("mem: out of memory")

	// ErrBadAlignment indicates an alignment that is not a power of two or that the
	// backend cannot honour.
	ErrBadAlignment = errors.New("mem: unsupported alignment")

	// ErrRelease indicates that the underlying allocator failed to release a buffer.
	// Deallocate treats it as fatal.
	ErrRelease = errors.New("mem: release failed")
)
