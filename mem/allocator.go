package mem

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/rawmem/internal/buf"
)

// Allocator is the underlying allocation call that Allocate and Deallocate route
// through for pointer-free element types.
//
// Implementations:
//   - GoAllocator: aligned byte slices from the Go heap (the default)
//   - MmapAllocator: anonymous mappings outside the Go heap
//   - CountingAllocator: wrapper that counts calls and live bytes
type Allocator interface {
	// Alloc returns size bytes of zeroed memory whose start is aligned to align.
	// The returned slice has len == cap == size.
	Alloc(size, align int) ([]byte, error)

	// Free releases a slice previously returned by Alloc, with the same start
	// and capacity.
	Free(b []byte) error
}

var defaultAllocator Allocator = NewGoAllocator()

// DefaultAllocator returns the allocator used by Allocate and Deallocate.
func DefaultAllocator() Allocator {
	return defaultAllocator
}

// SetDefaultAllocator installs a as the allocator used by Allocate and Deallocate and
// returns the previous one. A nil a restores a GoAllocator.
//
// Buffers must be deallocated through the allocator that produced them, so swap the
// default only while no buffers from the previous allocator are outstanding.
func SetDefaultAllocator(a Allocator) Allocator {
	prev := defaultAllocator
	if a == nil {
		a = NewGoAllocator()
	}
	defaultAllocator = a
	return prev
}

// GoAllocator allocates aligned byte slices from the Go heap. Free is a no-op; the
// garbage collector reclaims released buffers.
type GoAllocator struct{}

// NewGoAllocator creates a GoAllocator.
func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

// Alloc implements Allocator.
func (a *GoAllocator) Alloc(size, align int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrOutOfMemory, size)
	}
	if align <= 1 {
		return make([]byte, size), nil
	}
	if align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadAlignment, align)
	}

	padded, ok := buf.AddOverflowSafe(size, align-1)
	if !ok {
		return nil, fmt.Errorf("%w: size %d", ErrOutOfMemory, size)
	}
	raw := make([]byte, padded) // padding for alignment
	addr := int(addressOf(raw))
	shift := buf.AlignUp(addr, align) - addr
	return raw[shift : size+shift : size+shift], nil
}

// Free implements Allocator.
func (a *GoAllocator) Free(b []byte) error {
	return nil
}

func addressOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// Compile-time interface check
var _ Allocator = (*GoAllocator)(nil)
