package mem

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527 and `go vet -copylocks`.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Unique is the sole owner of a single object. When closed it disposes of the object
// through its Deleter, exactly once.
//
// A Unique must not be copied; transfer ownership with Move or Assign. The zero value
// is an empty handle using DefaultDelete.
//
//	h := mem.MakeUnique(session{ID: 7})
//	defer h.Close()
//	h.Get().ID++
type Unique[T any] struct {
	_   noCopy
	ptr *T
	del Deleter[T]
}

// NewUnique takes ownership of p. A nil d selects DefaultDelete, which expects p to
// come from Allocate[T](1) and be live.
func NewUnique[T any](p *T, d Deleter[T]) *Unique[T] {
	return &Unique[T]{ptr: p, del: d}
}

// MakeUnique allocates one slot, constructs v in it and returns its owner.
func MakeUnique[T any](v T) *Unique[T] {
	s := Allocate[T](1)
	return NewUnique(Construct(&s[0], v), DefaultDelete[T]{})
}

// Get returns the owned pointer without giving up ownership.
func (u *Unique[T]) Get() *T {
	return u.ptr
}

// Valid reports whether the handle owns an object.
func (u *Unique[T]) Valid() bool {
	return u.ptr != nil
}

// Deleter returns the disposal strategy.
func (u *Unique[T]) Deleter() Deleter[T] {
	if u.del == nil {
		return DefaultDelete[T]{}
	}
	return u.del
}

// Release gives up ownership and returns the pointer; the caller becomes responsible
// for disposing of it. The handle is left empty.
func (u *Unique[T]) Release() *T {
	p := u.ptr
	u.ptr = nil
	return p
}

// Reset disposes of the owned object, if any, and takes ownership of p. Resetting to
// the pointer already owned does nothing.
func (u *Unique[T]) Reset(p *T) {
	old := u.ptr
	if old == p {
		return
	}
	u.ptr = p
	if old != nil {
		u.Deleter().Delete(old)
	}
}

// Swap exchanges the owned pointers and deleters of u and other.
func (u *Unique[T]) Swap(other *Unique[T]) {
	u.ptr, other.ptr = other.ptr, u.ptr
	u.del, other.del = other.del, u.del
}

// Move transfers the pointer and deleter to a new handle, leaving u empty.
func (u *Unique[T]) Move() *Unique[T] {
	moved := &Unique[T]{ptr: u.ptr, del: u.del}
	u.ptr, u.del = nil, nil
	return moved
}

// Assign disposes of u's object, if any, then takes over other's pointer and deleter,
// leaving other empty.
func (u *Unique[T]) Assign(other *Unique[T]) {
	if u == other {
		return
	}
	old, oldDel := u.ptr, u.Deleter()
	u.ptr, u.del = other.ptr, other.del
	other.ptr, other.del = nil, nil
	if old != nil {
		oldDel.Delete(old)
	}
}

// Close ends the handle's scope: a non-empty handle invokes its deleter on the owned
// pointer, then drops the deleter. Closing an empty handle does nothing.
func (u *Unique[T]) Close() {
	p, d := u.ptr, u.Deleter()
	u.ptr, u.del = nil, nil
	if p != nil {
		d.Delete(p)
	}
}
