package mem

import (
	"log/slog"
)

// AllocStats is a snapshot of CountingAllocator activity.
type AllocStats struct {
	Allocs    int `json:"allocs"`
	Frees     int `json:"frees"`
	LiveBytes int `json:"live_bytes"`
	PeakBytes int `json:"peak_bytes"`
}

// CountingAllocator wraps another Allocator and counts calls and live bytes. It is
// used to check that every allocation is paired with exactly one release.
//
// Like the rest of the package it is not safe for concurrent use.
type CountingAllocator struct {
	next  Allocator
	log   *slog.Logger
	stats AllocStats
}

// NewCountingAllocator wraps next. A nil next wraps a GoAllocator. If log is non-nil
// every call is logged at debug level.
func NewCountingAllocator(next Allocator, log *slog.Logger) *CountingAllocator {
	if next == nil {
		next = NewGoAllocator()
	}
	return &CountingAllocator{next: next, log: log}
}

// Alloc implements Allocator.
func (c *CountingAllocator) Alloc(size, align int) ([]byte, error) {
	b, err := c.next.Alloc(size, align)
	if err != nil {
		if c.log != nil {
			c.log.Debug("alloc failed", "size", size, "align", align, "err", err)
		}
		return nil, err
	}

	c.stats.Allocs++
	c.stats.LiveBytes += len(b)
	c.stats.PeakBytes = max(c.stats.PeakBytes, c.stats.LiveBytes)

	if c.log != nil {
		c.log.Debug("alloc", "size", size, "align", align, "addr", addressOf(b), "live", c.stats.LiveBytes)
	}
	return b, nil
}

// Free implements Allocator.
func (c *CountingAllocator) Free(b []byte) error {
	if err := c.next.Free(b); err != nil {
		return err
	}

	c.stats.Frees++
	c.stats.LiveBytes -= len(b)

	if c.log != nil {
		c.log.Debug("free", "size", len(b), "addr", addressOf(b), "live", c.stats.LiveBytes)
	}
	return nil
}

// Stats returns the current counters.
func (c *CountingAllocator) Stats() AllocStats {
	return c.stats
}

// Balanced reports whether every allocation has been released.
func (c *CountingAllocator) Balanced() bool {
	return c.stats.Allocs == c.stats.Frees && c.stats.LiveBytes == 0
}

// Compile-time interface check
var _ Allocator = (*CountingAllocator)(nil)
