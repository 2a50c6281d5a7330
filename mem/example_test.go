package mem_test

import (
	"fmt"

	"github.com/joshuapare/rawmem/mem"
)

// Example_shift demonstrates an overlapping range transfer inside one buffer.
func Example_shift() {
	buf := mem.Allocate[int64](8)
	defer mem.Deallocate(buf)

	for i := range buf {
		mem.Construct(&buf[i], int64(i))
	}

	code := mem.CopyWithin(buf, 2, 0, 6)
	fmt.Println(code, buf)

	// Output:
	// Success [0 1 0 1 2 3 4 5]
}

// ExampleUnique demonstrates scope-bound ownership with a custom deleter.
func ExampleUnique() {
	type conn struct{ id int }

	h := mem.NewUnique(&conn{id: 1}, mem.DeleterFunc[conn](func(c *conn) {
		fmt.Println("closing conn", c.id)
	}))
	defer h.Close()

	moved := h.Move()
	fmt.Println("original valid:", h.Valid())
	moved.Close()

	// Output:
	// original valid: false
	// closing conn 1
}

// ExampleFillOfRange demonstrates the status returned for a range past the buffer.
func ExampleFillOfRange() {
	buf := mem.Allocate[int32](4)
	defer mem.Deallocate(buf)

	fmt.Println(mem.UninitializedFillOfRange(buf, 0, 4, 7), buf)
	fmt.Println(mem.FillOfRange(buf, 2, 4, 9), buf)

	// Output:
	// Success [7 7 7 7]
	// IndexOutOfRange [7 7 7 7]
}
