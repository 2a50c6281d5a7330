package mem

import (
	"fmt"
	"unsafe"
)

// UniqueSlice is the sole owner of an array. It adds indexed access to the Unique
// operations and disposes of the whole array through a SliceDeleter.
type UniqueSlice[T any] struct {
	_   noCopy
	s   []T
	del SliceDeleter[T]
}

// NewUniqueSlice takes ownership of s. A nil d selects DefaultDeleteSlice, which
// expects s to come from Allocate with every slot live.
func NewUniqueSlice[T any](s []T, d SliceDeleter[T]) *UniqueSlice[T] {
	return &UniqueSlice[T]{s: s, del: d}
}

// MakeUniqueSlice allocates n slots, builds each one with init (nil leaves zero
// values) and returns their owner.
func MakeUniqueSlice[T any](n int, init func(i int, slot *T)) *UniqueSlice[T] {
	s := Allocate[T](n)
	for i := range s {
		if init != nil {
			init(i, &s[i])
		}
	}
	return NewUniqueSlice(s, DefaultDeleteSlice[T]{})
}

// Get returns the owned array without giving up ownership.
func (u *UniqueSlice[T]) Get() []T {
	return u.s
}

// At returns a pointer to element i. It panics if i is out of range.
func (u *UniqueSlice[T]) At(i int) *T {
	return &u.s[i]
}

// Len returns the number of owned elements.
func (u *UniqueSlice[T]) Len() int {
	return len(u.s)
}

// Valid reports whether the handle owns an array.
func (u *UniqueSlice[T]) Valid() bool {
	return u.s != nil
}

// Deleter returns the disposal strategy.
func (u *UniqueSlice[T]) Deleter() SliceDeleter[T] {
	if u.del == nil {
		return DefaultDeleteSlice[T]{}
	}
	return u.del
}

// Release gives up ownership and returns the array, leaving the handle empty.
func (u *UniqueSlice[T]) Release() []T {
	s := u.s
	u.s = nil
	return s
}

// Reset disposes of the owned array, if any, and takes ownership of s. Resetting to
// the slice already owned does nothing. s must not be a view of the owned array with
// a different length: Reset panics rather than lose track of live elements.
func (u *UniqueSlice[T]) Reset(s []T) {
	old := u.s
	if sameArray(old, s) {
		if len(s) != len(old) {
			panic(fmt.Sprintf("mem: Reset to a view of the owned array with length %d, owned length %d", len(s), len(old)))
		}
		return
	}
	u.s = s
	if old != nil {
		u.Deleter().Delete(old)
	}
}

// Swap exchanges the owned arrays and deleters of u and other.
func (u *UniqueSlice[T]) Swap(other *UniqueSlice[T]) {
	u.s, other.s = other.s, u.s
	u.del, other.del = other.del, u.del
}

// Move transfers the array and deleter to a new handle, leaving u empty.
func (u *UniqueSlice[T]) Move() *UniqueSlice[T] {
	moved := &UniqueSlice[T]{s: u.s, del: u.del}
	u.s, u.del = nil, nil
	return moved
}

// Assign disposes of u's array, if any, then takes over other's array and deleter,
// leaving other empty.
func (u *UniqueSlice[T]) Assign(other *UniqueSlice[T]) {
	if u == other {
		return
	}
	old, oldDel := u.s, u.Deleter()
	u.s, u.del = other.s, other.del
	other.s, other.del = nil, nil
	if old != nil {
		oldDel.Delete(old)
	}
}

// Close invokes the deleter on the owned array when non-empty, then drops the deleter.
func (u *UniqueSlice[T]) Close() {
	s, d := u.s, u.Deleter()
	u.s, u.del = nil, nil
	if s != nil {
		d.Delete(s)
	}
}

func sameArray[T any](a, b []T) bool {
	return a != nil && b != nil && unsafe.SliceData(a) == unsafe.SliceData(b)
}
