//go:build windows

// Package mmfile provides platform-specific helpers for anonymous memory mappings that
// live outside the Go heap.
package mmfile

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Native reports whether MapAnon is backed by the operating system rather than the
// Go heap.
const Native = true

// MapAnon commits size bytes of zeroed, read-write memory with VirtualAlloc.
func MapAnon(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmfile: invalid mapping size %d", size)
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("mmfile: VirtualAlloc %d bytes: %w", size, err)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// Unmap releases a mapping returned by MapAnon.
func Unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	// Use unsafe.Pointer in a single expression to avoid linter warnings
	return windows.VirtualFree(uintptr(unsafe.Pointer(&data[0])), 0, windows.MEM_RELEASE)
}
