//go:build !linux && !darwin && !freebsd && !windows

// Package mmfile provides platform-specific helpers for anonymous memory mappings that
// live outside the Go heap.
package mmfile

import "fmt"

// Native reports whether MapAnon is backed by the operating system rather than the
// Go heap.
const Native = false

// MapAnon allocates from the Go heap when anonymous mappings are not available.
func MapAnon(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmfile: invalid mapping size %d", size)
	}
	return make([]byte, size), nil
}

// Unmap is a no-op; the garbage collector reclaims fallback mappings.
func Unmap(data []byte) error {
	return nil
}
