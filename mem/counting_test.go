package mem

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountingAllocator_LogsCalls(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := NewCountingAllocator(NewGoAllocator(), log)

	s := AllocateFrom[int32](c, 16)
	DeallocateTo(c, s)

	assert.Contains(t, out.String(), "msg=alloc size=64 align=4")
	assert.Contains(t, out.String(), "msg=free size=64")
	assert.True(t, c.Balanced())
}

func TestCountingAllocator_PeakAndLive(t *testing.T) {
	c := NewCountingAllocator(nil, nil)

	a := AllocateFrom[int64](c, 8)
	b := AllocateFrom[int64](c, 4)
	assert.Equal(t, 96, c.Stats().LiveBytes)

	DeallocateTo(c, a)
	assert.False(t, c.Balanced())
	assert.Equal(t, 32, c.Stats().LiveBytes)
	assert.Equal(t, 96, c.Stats().PeakBytes)

	DeallocateTo(c, b)
	assert.True(t, c.Balanced())
}

func TestCountingAllocator_FailuresNotCounted(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := NewCountingAllocator(failingAllocator{}, log)

	_, err := c.Alloc(8, 8)
	require.ErrorIs(t, err, errRefused)
	require.ErrorIs(t, c.Free(make([]byte, 8)), errRefused)

	assert.Equal(t, AllocStats{}, c.Stats())
	assert.Contains(t, out.String(), "alloc failed")
}
