package mem

// Assigner is implemented by *T for element types whose assignment into a live slot
// is more than a bitwise copy.
type Assigner[T any] interface {
	AssignFrom(src *T)
}

// CopyConstructor is implemented by *T for element types whose construction from
// another value is more than a bitwise copy. ConstructFrom is called on an
// uninitialized slot.
type CopyConstructor[T any] interface {
	ConstructFrom(src *T)
}

// Destructible is implemented by element types that release resources when a slot
// goes from live to uninitialized.
type Destructible interface {
	Destruct()
}

// IsTriviallyRelocatable reports whether T has no custom copy, assignment or
// destruction, so that its values can be moved as raw bytes.
func IsTriviallyRelocatable[T any]() bool {
	p := any((*T)(nil))
	if _, ok := p.(Assigner[T]); ok {
		return false
	}
	if _, ok := p.(CopyConstructor[T]); ok {
		return false
	}
	_, ok := p.(Destructible)
	return !ok
}

func assign[T any](dst, src *T) {
	if a, ok := any(dst).(Assigner[T]); ok {
		a.AssignFrom(src)
		return
	}
	*dst = *src
}

func constructFrom[T any](dst, src *T) {
	if c, ok := any(dst).(CopyConstructor[T]); ok {
		c.ConstructFrom(src)
		return
	}
	*dst = *src
}
