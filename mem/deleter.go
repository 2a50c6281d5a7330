package mem

import "unsafe"

// Deleter disposes of a single object owned by a Unique.
type Deleter[T any] interface {
	Delete(p *T)
}

// DeleterFunc adapts an ordinary function to a Deleter.
type DeleterFunc[T any] func(p *T)

// Delete calls f(p).
func (f DeleterFunc[T]) Delete(p *T) { f(p) }

// SliceDeleter disposes of an array owned by a UniqueSlice.
type SliceDeleter[T any] interface {
	Delete(s []T)
}

// SliceDeleterFunc adapts an ordinary function to a SliceDeleter.
type SliceDeleterFunc[T any] func(s []T)

// Delete calls f(s).
func (f SliceDeleterFunc[T]) Delete(s []T) { f(s) }

// DefaultDelete destructs an object obtained from Allocate[T](1) and deallocates it.
type DefaultDelete[T any] struct{}

// Delete implements Deleter.
func (DefaultDelete[T]) Delete(p *T) {
	Destruct(p)
	Deallocate(unsafe.Slice(p, 1))
}

// DefaultDeleteSlice destructs every element of a buffer obtained from Allocate and
// deallocates it. Every slot must be live.
type DefaultDeleteSlice[T any] struct{}

// Delete implements SliceDeleter.
func (DefaultDeleteSlice[T]) Delete(s []T) {
	for i := range s {
		Destruct(&s[i])
	}
	Deallocate(s)
}

var (
	_ Deleter[int]      = DefaultDelete[int]{}
	_ Deleter[int]      = DeleterFunc[int](nil)
	_ SliceDeleter[int] = DefaultDeleteSlice[int]{}
	_ SliceDeleter[int] = SliceDeleterFunc[int](nil)
)
