package mem

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/rawmem/internal/buf"
)

// Allocate returns a contiguous buffer of count uninitialized slots of T, obtained
// with a single call to the default allocator. count <= 0 returns nil.
//
// Allocation failure is fatal: Allocate panics with an error wrapping ErrOutOfMemory.
func Allocate[T any](count int) []T {
	return AllocateFrom[T](defaultAllocator, count)
}

// AllocateFrom is Allocate with an explicit allocator.
//
// Element types containing Go pointers, and zero-size types, are allocated as a typed
// Go slice instead of through a; the garbage collector must be able to see them.
func AllocateFrom[T any](a Allocator, count int) []T {
	if count <= 0 {
		return nil
	}
	if !byteBacked[T]() {
		return make([]T, count)
	}

	var zero T
	size, err := buf.ByteSize(count, int(unsafe.Sizeof(zero)))
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrOutOfMemory, err))
	}
	b, err := a.Alloc(size, int(unsafe.Alignof(zero)))
	if err != nil {
		if !errors.Is(err, ErrOutOfMemory) {
			err = fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		panic(fmt.Errorf("allocate %d x %T: %w", count, zero, err))
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), count)
}

// Deallocate releases a buffer returned by Allocate with a single call to the default
// allocator. A nil buffer is a no-op. s must be exactly the slice Allocate returned
// (same start and capacity) and must not be released twice.
//
// Deallocate does not destruct live slots; callers Destruct them first.
func Deallocate[T any](s []T) {
	DeallocateTo(defaultAllocator, s)
}

// DeallocateTo is Deallocate with an explicit allocator, which must be the one the
// buffer was allocated from.
func DeallocateTo[T any](a Allocator, s []T) {
	if s == nil || !byteBacked[T]() {
		return
	}

	var zero T
	base := (*byte)(unsafe.Pointer(unsafe.SliceData(s)))
	release(a, unsafe.Slice(base, cap(s)*int(unsafe.Sizeof(zero))))
}

// deallocateValue releases the single value of type t at p, which was allocated from
// a as a one-element buffer.
func deallocateValue(a Allocator, p unsafe.Pointer, t reflect.Type) {
	if t.Size() == 0 || hasPointers(t) {
		return
	}
	release(a, unsafe.Slice((*byte)(p), t.Size()))
}

func release(a Allocator, b []byte) {
	if err := a.Free(b); err != nil {
		panic(fmt.Errorf("%w: %w", ErrRelease, err))
	}
}

// byteBacked reports whether T may live in untyped byte memory.
func byteBacked[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) != 0 && !hasPointers(reflect.TypeFor[T]())
}

// hasPointers reports whether values of t contain any Go pointer.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, UnsafePointer, Map, Slice, String, Interface, Chan, Func.
		return true
	}
}
