package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rawmem/internal/logger"
	"github.com/joshuapare/rawmem/status"
)

type copyJSON struct {
	Path   string `json:"path"`
	Status string `json:"status"`
	Values []int64
	Alloc  struct {
		Allocs int `json:"allocs"`
		Frees  int `json:"frees"`
	} `json:"alloc"`
}

func TestRunCopy_ShiftRight(t *testing.T) {
	for _, perElement := range []bool{false, true} {
		setGlobalFlags(t, true, "go")

		out, err := captureOutput(t, func() error {
			return runCopy(copyOptions{count: 128, dst: 20, src: 0, length: 108, perElement: perElement, show: -1})
		})
		require.NoError(t, err)

		var res copyJSON
		decodeJSON(t, out, &res)
		assert.Equal(t, "Success", res.Status)
		require.Len(t, res.Values, 128)
		for off := range 108 {
			require.Equal(t, int64(off), res.Values[20+off], "perElement=%v offset %d", perElement, off)
		}
		if perElement {
			assert.Equal(t, "per-element", res.Path)
		} else {
			assert.Equal(t, "block", res.Path)
		}
		assert.Equal(t, res.Alloc.Allocs, res.Alloc.Frees)
	}
}

func TestRunCopy_ShiftLeftPerElement(t *testing.T) {
	setGlobalFlags(t, true, "go")

	out, err := captureOutput(t, func() error {
		return runCopy(copyOptions{count: 128, dst: 0, src: 20, length: 108, perElement: true, show: 108})
	})
	require.NoError(t, err)

	var res copyJSON
	decodeJSON(t, out, &res)
	require.Len(t, res.Values, 108)
	for off := range 108 {
		require.Equal(t, int64(20+off), res.Values[off])
	}
}

func TestRunCopy_Uninitialized(t *testing.T) {
	setGlobalFlags(t, true, "go")

	out, err := captureOutput(t, func() error {
		return runCopy(copyOptions{count: 8, dst: 4, src: 0, length: 4, uninitialized: true, perElement: true, show: -1})
	})
	require.NoError(t, err)

	var res copyJSON
	decodeJSON(t, out, &res)
	assert.Equal(t, []int64{0, 0, 0, 0, 0, 1, 2, 3}, res.Values)
	assert.Equal(t, 2, res.Alloc.Allocs)
	assert.Equal(t, 2, res.Alloc.Frees)
}

func TestRunCopy_OutOfRangeReportsStatus(t *testing.T) {
	setGlobalFlags(t, false, "go")

	out, err := captureOutput(t, func() error {
		return runCopy(copyOptions{count: 16, dst: 10, src: 0, length: 8, show: 0})
	})
	require.ErrorIs(t, err, status.ErrIndexOutOfRange)
	assert.Contains(t, out, "IndexOutOfRange")
}

func TestRunCopy_UnknownBackend(t *testing.T) {
	setGlobalFlags(t, false, "jemalloc")

	err := runCopy(copyOptions{count: 4, length: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}

func TestRunCopy_LogsThroughLogger(t *testing.T) {
	setGlobalFlags(t, true, "go")
	var logs bytes.Buffer
	logger.Init(logger.Options{Enabled: true, Output: &logs, Level: slog.LevelDebug})
	t.Cleanup(func() { logger.Init(logger.Options{}) })

	_, err := captureOutput(t, func() error {
		return runCopy(copyOptions{count: 8, dst: 2, src: 0, length: 4, show: -1})
	})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "msg=\"allocator ready\" backend=go")
	assert.Contains(t, logs.String(), "msg=\"copy finished\" status=Success path=block")
}
