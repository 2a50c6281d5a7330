// Package buf contains overflow-safe size arithmetic and range checks shared by the
// allocation and range routines.
package buf

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOverflow indicates that a size computation does not fit in an int.
	ErrOverflow = errors.New("buf: size overflow")

	// ErrOutOfBounds indicates that a range extends past the end of its buffer.
	ErrOutOfBounds = errors.New("buf: range out of bounds")

	// ErrNegative indicates a negative offset, count or element size.
	ErrNegative = errors.New("buf: negative argument")
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

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when the
// result would overflow int or either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// ByteSize returns count * elemSize, the number of bytes needed to hold count
// elements of elemSize bytes each.
//
//	size, err := buf.ByteSize(count, int(unsafe.Sizeof(v)))
//	if err != nil {
//	    return fmt.Errorf("alloc: %w", err)
//	}
func ByteSize(count, elemSize int) (int, error) {
	if count < 0 || elemSize < 0 {
		return 0, fmt.Errorf("%w: count=%d elemSize=%d", ErrNegative, count, elemSize)
	}
	size, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("%w: count=%d * elemSize=%d", ErrOverflow, count, elemSize)
	}
	return size, nil
}

// CheckRange validates that the half-open range [off, off+n) lies within a buffer of
// bufLen elements and returns the end index.
func CheckRange(bufLen, off, n int) (int, error) {
	if off < 0 || n < 0 {
		return 0, fmt.Errorf("%w: off=%d n=%d", ErrNegative, off, n)
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok {
		return 0, fmt.Errorf("%w: off=%d + n=%d", ErrOverflow, off, n)
	}
	if end > bufLen {
		return 0, fmt.Errorf("%w: end=%d > len=%d", ErrOutOfBounds, end, bufLen)
	}
	return end, nil
}

// AlignUp rounds n up to the next multiple of align, which must be a power of two.
func AlignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
