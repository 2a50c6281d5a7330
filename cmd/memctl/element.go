package main

import "github.com/joshuapare/rawmem/mem"

// element is an int64 with assignment and construction hooks. The hooks do nothing a
// bitwise copy would not, but their presence sends range operations down the
// per-element path instead of the block move used for plain int64.
type element int64

func (e *element) AssignFrom(src *element)    { *e = *src }
func (e *element) ConstructFrom(src *element) { *e = *src }

// cell is the element constraint shared by the plain and hooked runs.
type cell interface {
	~int64
}

// pathName describes how range operations move T.
func pathName[T cell]() string {
	if mem.IsTriviallyRelocatable[T]() {
		return "block"
	}
	return "per-element"
}

// values converts a window of buf to int64 for output. n < 0 means all of it.
func values[T cell](buf []T, n int) []int64 {
	if n < 0 || n > len(buf) {
		n = len(buf)
	}
	out := make([]int64, n)
	for i := range n {
		out[i] = int64(buf[i])
	}
	return out
}

// constructSequence makes every slot of buf live with value i at index i.
func constructSequence[T cell](buf []T) {
	for i := range buf {
		mem.Construct(&buf[i], T(i))
	}
}

// destructAll returns every slot of buf to the uninitialized state.
func destructAll[T cell](buf []T) {
	for i := range buf {
		mem.Destruct(&buf[i])
	}
}
