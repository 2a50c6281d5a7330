package mem

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test element types
// ============================================================================

// lifecycle counts hook invocations across all userData values.
type lifecycle struct {
	constructed int
	assigned    int
	destructed  int
	// badDestructs counts Destruct calls on slots that were not live.
	badDestructs int
}

var counts lifecycle

// resetCounts clears the lifecycle counters for one test.
func resetCounts(t testing.TB) {
	t.Helper()
	counts = lifecycle{}
	t.Cleanup(func() { counts = lifecycle{} })
}

// userData owns a heap block, so copies must duplicate it and destruction must drop it.
type userData struct {
	storage *[128]int32
	bytes   [128]byte
	i32     uint32
	f32     float32
	f64     float64
}

func newUserData(i int) userData {
	u := userData{
		storage: new([128]int32),
		i32:     uint32(i),
		f32:     float32(i * 10),
		f64:     float64(i * 100),
	}
	u.storage[0] = int32(i)
	copy(u.bytes[:], fmt.Sprintf("hello, world! %d", i))
	return u
}

func (u *userData) ConstructFrom(src *userData) {
	counts.constructed++
	u.storage = new([128]int32)
	if src.storage != nil {
		*u.storage = *src.storage
	}
	u.bytes = src.bytes
	u.i32, u.f32, u.f64 = src.i32, src.f32, src.f64
}

func (u *userData) AssignFrom(src *userData) {
	if u == src {
		return
	}
	counts.assigned++
	if u.storage == nil {
		u.storage = new([128]int32)
	}
	if src.storage != nil {
		*u.storage = *src.storage
	}
	u.bytes = src.bytes
	u.i32, u.f32, u.f64 = src.i32, src.f32, src.f64
}

func (u *userData) Destruct() {
	if u.storage == nil {
		counts.badDestructs++
		return
	}
	counts.destructed++
	u.storage = nil
}

// hooked is pointer-free but has an assignment hook, so it lives in allocator memory
// and still takes the per-element path.
type hooked int64

var hookedAssigns int

func (h *hooked) AssignFrom(src *hooked) {
	hookedAssigns++
	*h = *src
}

func (h *hooked) ConstructFrom(src *hooked) { *h = *src }

// point is trivially relocatable.
type point struct {
	X, Y int64
}

// ============================================================================
// Test helpers
// ============================================================================

// newUserDataBuffer allocates n live userData values carrying their index.
func newUserDataBuffer(t testing.TB, n int) []userData {
	t.Helper()
	s := Allocate[userData](n)
	require.Len(t, s, n)
	for i := range s {
		Construct(&s[i], newUserData(i))
	}
	t.Cleanup(func() {
		for i := range s {
			Destruct(&s[i])
		}
		Deallocate(s)
	})
	return s
}

// sequence returns a live buffer of n elements of T holding 0..n-1.
func sequence[T ~int | ~int64](a Allocator, n int) []T {
	s := AllocateFrom[T](a, n)
	for i := range s {
		Construct(&s[i], T(i))
	}
	return s
}

// failingAllocator refuses every request.
type failingAllocator struct{}

var errRefused = errors.New("refused")

func (failingAllocator) Alloc(size, align int) ([]byte, error) { return nil, errRefused }
func (failingAllocator) Free(b []byte) error                   { return errRefused }

// requirePanicsWith asserts that fn panics with an error matching target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
