package mem

import (
	"unsafe"

	"github.com/joshuapare/rawmem/internal/buf"
	"github.com/joshuapare/rawmem/status"
)

// CopyOfRange copies length live elements from src[srcIndex:] onto the live elements
// of dst[dstIndex:] using assignment. dst and src may be the same buffer and the
// ranges may overlap; the result is as if every source element were read before any
// destination element was written.
func CopyOfRange[T any](dst, src []T, dstIndex, srcIndex, length int) status.Code {
	return transfer(dst, src, dstIndex, srcIndex, length, assign[T])
}

// CopyWithin is CopyOfRange with source and destination in the same buffer.
func CopyWithin[T any](b []T, dstIndex, srcIndex, length int) status.Code {
	return CopyOfRange(b, b, dstIndex, srcIndex, length)
}

// UninitializedCopyOfRange constructs length elements in the uninitialized slots
// dst[dstIndex:] from the live elements of src[srcIndex:]. Overlap is handled as in
// CopyOfRange.
func UninitializedCopyOfRange[T any](dst, src []T, dstIndex, srcIndex, length int) status.Code {
	return transfer(dst, src, dstIndex, srcIndex, length, constructFrom[T])
}

// UninitializedCopyWithin is UninitializedCopyOfRange with source and destination in
// the same buffer.
func UninitializedCopyWithin[T any](b []T, dstIndex, srcIndex, length int) status.Code {
	return UninitializedCopyOfRange(b, b, dstIndex, srcIndex, length)
}

func transfer[T any](dst, src []T, dstIndex, srcIndex, length int, step func(d, s *T)) status.Code {
	if dst == nil || src == nil || length < 0 {
		return status.IllegalArgument
	}
	if length == 0 {
		return status.Success
	}
	if _, err := buf.CheckRange(len(dst), dstIndex, length); err != nil {
		return status.IndexOutOfRange
	}
	if _, err := buf.CheckRange(len(src), srcIndex, length); err != nil {
		return status.IndexOutOfRange
	}

	d := dst[dstIndex : dstIndex+length]
	s := src[srcIndex : srcIndex+length]

	if IsTriviallyRelocatable[T]() {
		copy(d, s) // memmove
		return status.Success
	}

	switch direction(d, s) {
	case inPlace:
		// Every element already holds itself.
	case backward:
		for i := length - 1; i >= 0; i-- {
			step(&d[i], &s[i])
		}
	default:
		for i := range length {
			step(&d[i], &s[i])
		}
	}
	return status.Success
}

type traversal uint8

const (
	forward traversal = iota
	backward
	inPlace
)

// direction picks the traversal order that never reads a source element after it has
// been overwritten. d and s have equal, non-zero length.
func direction[T any](d, s []T) traversal {
	dBase := uintptr(unsafe.Pointer(unsafe.SliceData(d)))
	sBase := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	span := uintptr(len(s)) * unsafe.Sizeof(s[0])

	switch {
	case dBase == sBase:
		return inPlace
	case dBase > sBase && dBase < sBase+span:
		return backward
	default:
		return forward
	}
}
