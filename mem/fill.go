package mem

import (
	"github.com/joshuapare/rawmem/internal/buf"
	"github.com/joshuapare/rawmem/status"
)

// FillOfRange assigns value to each live element of b[index:index+length], from the
// last position to the first.
func FillOfRange[T any](b []T, index, length int, value T) status.Code {
	return fill(b, index, length, &value, assign[T])
}

// UninitializedFillOfRange constructs a copy of value in each uninitialized slot of
// b[index:index+length], from the last position to the first.
func UninitializedFillOfRange[T any](b []T, index, length int, value T) status.Code {
	return fill(b, index, length, &value, constructFrom[T])
}

func fill[T any](b []T, index, length int, value *T, step func(d, s *T)) status.Code {
	if b == nil || length < 0 {
		return status.IllegalArgument
	}
	if length == 0 {
		return status.Success
	}
	if _, err := buf.CheckRange(len(b), index, length); err != nil {
		return status.IndexOutOfRange
	}

	for i := index + length - 1; i >= index; i-- {
		step(&b[i], value)
	}
	return status.Success
}
