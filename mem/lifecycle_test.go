package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstruct_UsesCopyConstructor(t *testing.T) {
	resetCounts(t)

	src := newUserData(7)
	s := Allocate[userData](1)
	p := Construct(&s[0], src)

	require.Same(t, &s[0], p)
	assert.Equal(t, 1, counts.constructed)
	assert.Equal(t, uint32(7), p.i32)
	assert.Equal(t, int32(7), p.storage[0])
	assert.NotSame(t, src.storage, p.storage, "construction must duplicate owned storage")

	Destruct(p)
	Deallocate(s)
}

func TestConstruct_Bitwise(t *testing.T) {
	s := Allocate[point](2)
	Construct(&s[1], point{X: 3, Y: 4})
	assert.Equal(t, point{}, s[0])
	assert.Equal(t, point{X: 3, Y: 4}, s[1])
	Deallocate(s)
}

func TestEmplace(t *testing.T) {
	s := Allocate[point](2)

	Emplace(&s[0], func(p *point) { p.X, p.Y = 1, 2 })
	Emplace(&s[1], nil)

	assert.Equal(t, point{X: 1, Y: 2}, s[0])
	assert.Equal(t, point{}, s[1])
	Deallocate(s)
}

func TestDestruct_RunsHookAndClearsSlot(t *testing.T) {
	resetCounts(t)

	s := Allocate[userData](1)
	Construct(&s[0], newUserData(3))
	Destruct(&s[0])

	assert.Equal(t, 1, counts.destructed)
	assert.Zero(t, counts.badDestructs)
	assert.Equal(t, userData{}, s[0], "slot is zeroed after destruction")
	Deallocate(s)
}

func TestDestruct_TrivialZeroes(t *testing.T) {
	s := Allocate[point](1)
	Construct(&s[0], point{X: 9})
	Destruct(&s[0])
	assert.Equal(t, point{}, s[0])
	Deallocate(s)
}

func TestIsTriviallyRelocatable(t *testing.T) {
	assert.True(t, IsTriviallyRelocatable[int]())
	assert.True(t, IsTriviallyRelocatable[point]())
	assert.True(t, IsTriviallyRelocatable[string]())
	assert.False(t, IsTriviallyRelocatable[userData]())
	assert.False(t, IsTriviallyRelocatable[hooked]())
}

func TestHasPointers(t *testing.T) {
	assert.False(t, byteBacked[struct{}]())
	assert.True(t, byteBacked[int64]())
	assert.True(t, byteBacked[point]())
	assert.True(t, byteBacked[[4]complex128]())
	assert.True(t, byteBacked[hooked]())
	assert.False(t, byteBacked[userData]())
	assert.False(t, byteBacked[string]())
	assert.False(t, byteBacked[[]int]())
	assert.False(t, byteBacked[map[int]int]())
	assert.False(t, byteBacked[func()]())
	assert.False(t, byteBacked[struct {
		n int
		e error
	}]())
	assert.False(t, byteBacked[[0]*int](), "zero-size arrays are not byte backed")
}
