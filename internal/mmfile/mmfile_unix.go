//go:build linux || darwin || freebsd

// Package mmfile provides platform-specific helpers for anonymous memory mappings that
// live outside the Go heap.
package mmfile

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Native reports whether MapAnon is backed by the operating system rather than the
// Go heap.
const Native = true

// MapAnon maps size bytes of zeroed, private, read-write memory.
func MapAnon(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmfile: invalid mapping size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmfile: mmap %d bytes: %w", size, err)
	}
	return data, nil
}

// Unmap releases a mapping returned by MapAnon. data must have the same start and
// capacity as the slice MapAnon returned.
func Unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
