package main

import (
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/rawmem/internal/logger"
	"github.com/joshuapare/rawmem/mem"
)

type allocOptions struct {
	count  int
	rounds int
}

type allocResult struct {
	Backend      string         `json:"backend"`
	Count        int            `json:"count"`
	Rounds       int            `json:"rounds"`
	BytesPerCall int            `json:"bytes_per_call"`
	Checksum     int64          `json:"checksum"`
	Balanced     bool           `json:"balanced"`
	Alloc        mem.AllocStats `json:"alloc"`
}

func init() {
	rootCmd.AddCommand(newAllocCmd())
}

func newAllocCmd() *cobra.Command {
	var opts allocOptions

	cmd := &cobra.Command{
		Use:   "alloc",
		Short: "Allocate, touch and release int64 buffers",
		Long: `The alloc command allocates a buffer of --count int64 slots, constructs every
slot, reads them back, destructs them and releases the buffer, --rounds times.
It reports the allocator accounting so unpaired calls are visible.

Example:
  memctl alloc --count 1048576 --backend mmap
  memctl alloc --count 4096 --rounds 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlloc(opts)
		},
	}

	cmd.Flags().IntVar(&opts.count, "count", 1024, "Number of int64 slots per buffer")
	cmd.Flags().IntVar(&opts.rounds, "rounds", 1, "Number of allocate/release rounds")

	return cmd
}

func runAlloc(opts allocOptions) error {
	if opts.count <= 0 || opts.rounds <= 0 {
		return fmt.Errorf("count and rounds must be positive (count=%d rounds=%d)", opts.count, opts.rounds)
	}

	alloc, err := newAllocator(backend)
	if err != nil {
		return err
	}

	res := allocResult{
		Backend:      backend,
		Count:        opts.count,
		Rounds:       opts.rounds,
		BytesPerCall: opts.count * int(unsafe.Sizeof(int64(0))),
	}

	for range opts.rounds {
		buf := mem.AllocateFrom[int64](alloc, opts.count)
		constructSequence(buf)
		for _, v := range buf {
			res.Checksum += v
		}
		destructAll(buf)
		mem.DeallocateTo(alloc, buf)
	}

	res.Alloc = alloc.Stats()
	res.Balanced = alloc.Balanced()
	logger.Info("alloc finished", "rounds", opts.rounds, "balanced", res.Balanced, "backend", backend)

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		printInfo("\nAllocation Report:\n")
		printInfo("  Backend: %s\n", backend)
		printInfo("  Buffer: %d slots (%s)\n", opts.count, humanize.IBytes(uint64(res.BytesPerCall)))
		printInfo("  Rounds: %d\n", opts.rounds)
		printInfo("  Allocs/Frees: %d/%d\n", res.Alloc.Allocs, res.Alloc.Frees)
		printInfo("  Peak: %s\n", humanize.IBytes(uint64(res.Alloc.PeakBytes)))
		printVerbose("  Checksum: %d\n", res.Checksum)
		if res.Balanced {
			printInfo("  ✓ Every allocation released exactly once\n")
		} else {
			printInfo("  ✗ Live bytes remain: %s\n", humanize.IBytes(uint64(res.Alloc.LiveBytes)))
		}
	}

	if !res.Balanced {
		return fmt.Errorf("alloc: allocator unbalanced: %+v", res.Alloc)
	}
	return nil
}
