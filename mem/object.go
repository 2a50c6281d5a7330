package mem

import (
	"fmt"
	"reflect"
)

// Object routes allocation of the types that embed it through Allocate and
// Deallocate instead of plain new. It carries no data.
//
//	type shape struct {
//	    mem.Object
//	    name string
//	}
//
//	s := mem.New[shape](func(s *shape) { s.name = "square" })
//	defer mem.Delete(s)
type Object struct{}

func (Object) routedAllocation() {}

// Routed is satisfied by every type that embeds Object, directly or through another
// embedded type.
type Routed interface {
	routedAllocation()
}

// New allocates one T through Allocate, runs init on it (nil leaves the zero value)
// and returns it.
func New[T any, P interface {
	*T
	Routed
}](init func(P)) P {
	s := Allocate[T](1)
	p := P(&s[0])
	if init != nil {
		init(p)
	}
	return p
}

// Delete runs the Destruct method of r's dynamic type, if it has one, and releases
// the whole dynamic value through Deallocate. r must be the pointer New returned,
// held either as that pointer or as a Routed. A nil r is a no-op.
//
// A pointer to an embedded field (&c.shape) is a different object to Delete: its
// dynamic type is the embedded type, so neither the outer Destruct nor the outer size
// can be recovered from it.
//
// Embedding promotes an embedded type's Destruct; a type that defines its own should
// call the embedded one to finish the chain.
func Delete(r Routed) {
	if r == nil {
		return
	}
	v := reflect.ValueOf(r)
	if v.Kind() != reflect.Pointer {
		panic(fmt.Sprintf("mem: Delete of non-pointer %T", r))
	}
	if v.IsNil() {
		return
	}
	if d, ok := r.(Destructible); ok {
		d.Destruct()
	}
	elem := v.Elem()
	elem.SetZero()
	deallocateValue(defaultAllocator, v.UnsafePointer(), elem.Type())
}

// NewArray allocates n values of T through Allocate and runs init on each.
func NewArray[T any, P interface {
	*T
	Routed
}](n int, init func(i int, p P)) []T {
	s := Allocate[T](n)
	if init != nil {
		for i := range s {
			init(i, P(&s[i]))
		}
	}
	return s
}

// DeleteArray destructs every element of s and releases it through Deallocate.
func DeleteArray[T any, P interface {
	*T
	Routed
}](s []T) {
	if s == nil {
		return
	}
	for i := range s {
		Destruct(&s[i])
	}
	Deallocate(s)
}
