package mem

import (
	"fmt"
	"os"

	"github.com/joshuapare/rawmem/internal/mmfile"
)

// MmapAllocator places every allocation in its own anonymous mapping outside the Go
// heap, so large buffers of pointer-free elements add no garbage-collector pressure.
// Mappings are page aligned and zeroed by the operating system. On platforms without
// anonymous mappings it falls back to the Go heap (see Native).
//
// Each Alloc is one mmap and each Free one munmap, so small requests waste most of a
// page. Use it for large, long-lived buffers.
type MmapAllocator struct {
	pageSize int
}

// NewMmapAllocator creates an MmapAllocator.
func NewMmapAllocator() *MmapAllocator {
	return &MmapAllocator{pageSize: os.Getpagesize()}
}

// Native reports whether allocations are backed by the operating system.
func (a *MmapAllocator) Native() bool {
	return mmfile.Native
}

// Alloc implements Allocator.
func (a *MmapAllocator) Alloc(size, align int) ([]byte, error) {
	if align > a.pageSize || align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: %d (page size %d)", ErrBadAlignment, align, a.pageSize)
	}
	b, err := mmfile.MapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}
	return b, nil
}

// Free implements Allocator.
func (a *MmapAllocator) Free(b []byte) error {
	return mmfile.Unmap(b)
}

// Compile-time interface check
var _ Allocator = (*MmapAllocator)(nil)
