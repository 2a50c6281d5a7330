// Package mem provides raw-memory primitives: untyped allocation, in-place
// construction and destruction, overlap-safe range transfer and fill, a single-owner
// handle with a pluggable deleter, and an allocation-routing base for type hierarchies.
//
// # Overview
//
// The package deliberately stays small. It is not a general-purpose allocator (no free
// lists, no pooling) and not a container library; it supplies the building blocks a
// container would use. Every Allocate is exactly one call into the configured
// Allocator and every Deallocate is exactly one release call.
//
// # Slots
//
// A buffer returned by Allocate holds count slots. Each slot is either uninitialized
// (no live element) or live. Slots start uninitialized. The transitions are:
//
//   - uninitialized → live: Construct, Emplace, UninitializedCopyOfRange,
//     UninitializedFillOfRange
//   - live → uninitialized: Destruct
//
// The package does not track slot state. Using an operation that assumes the wrong
// state (assigning into an uninitialized slot, constructing over a live one) is a
// contract violation with undefined results.
//
// # Element Hooks
//
// Element types customize lifecycle behaviour by implementing methods on *T:
//
//   - AssignFrom(src *T): assignment into a live slot (Assigner)
//   - ConstructFrom(src *T): copy construction into an uninitialized slot (CopyConstructor)
//   - Destruct(): cleanup when a slot goes live → uninitialized (Destructible)
//
// A type implementing none of them is trivially relocatable and range transfers move
// it as a single block.
//
// # Usage Example
//
//	buf := mem.Allocate[userData](128)
//	defer mem.Deallocate(buf)
//
//	for i := range buf {
//	    mem.Construct(&buf[i], newUserData(i))
//	}
//	defer func() {
//	    for i := range buf {
//	        mem.Destruct(&buf[i])
//	    }
//	}()
//
//	// Shift the first 108 elements right by 20. Overlap is handled.
//	if err := mem.CopyWithin(buf, 20, 0, 108).Err(); err != nil {
//	    return err
//	}
//
// # Range Preconditions
//
// Range operations report through status.Code and have no effect unless they return
// status.Success:
//
//   - nil buffer or negative length: status.IllegalArgument
//   - zero length: status.Success, nothing touched
//   - negative index or range past len(buf): status.IndexOutOfRange
//
// # Ownership
//
// Unique and UniqueSlice own exactly one pointer (or slice) and dispose of it with a
// Deleter when closed:
//
//	h := mem.MakeUnique(config{Retries: 3})
//	defer h.Close()
//
// # Allocators
//
// Element types that contain Go pointers always live in typed Go memory so the garbage
// collector can see them. Pointer-free types are placed in byte memory obtained from
// the DefaultAllocator, which may be swapped for MmapAllocator to keep large buffers
// off the Go heap.
//
// # Thread Safety
//
// Nothing in this package is synchronized. A buffer, handle or allocator must be used
// by one goroutine at a time; callers synchronize externally.
package mem
