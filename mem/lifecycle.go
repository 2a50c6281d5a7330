package mem

// Construct copy-constructs v into the uninitialized slot at addr, making it live,
// and returns addr. It uses ConstructFrom when *T implements CopyConstructor.
func Construct[T any](addr *T, v T) *T {
	constructFrom(addr, &v)
	return addr
}

// Emplace builds a value in the uninitialized slot at addr by running init on it.
// A nil init leaves the zero value, which counts as constructed.
func Emplace[T any](addr *T, init func(*T)) *T {
	if init != nil {
		init(addr)
	}
	return addr
}

// Destruct runs the cleanup of the live value at addr and zeroes the slot, leaving it
// uninitialized. The memory itself is not released.
func Destruct[T any](addr *T) {
	if d, ok := any(addr).(Destructible); ok {
		d.Destruct()
	}
	var zero T
	*addr = zero
}
