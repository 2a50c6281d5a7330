package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rawmem/internal/logger"
	"github.com/joshuapare/rawmem/mem"
	"github.com/joshuapare/rawmem/status"
)

type fillOptions struct {
	count         int
	index         int
	length        int
	value         int64
	uninitialized bool
	perElement    bool
}

type fillResult struct {
	Backend string         `json:"backend"`
	Count   int            `json:"count"`
	Path    string         `json:"path"`
	Status  status.Code    `json:"status"`
	Values  []int64        `json:"values"`
	Alloc   mem.AllocStats `json:"alloc"`
}

func init() {
	rootCmd.AddCommand(newFillCmd())
}

func newFillCmd() *cobra.Command {
	var opts fillOptions

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Write one value into a range of elements",
		Long: `The fill command writes --value into len elements starting at --index.

Without --uninitialized the buffer first holds 0..count-1 and the range is assigned.
With --uninitialized the range is constructed in a freshly allocated buffer.

Example:
  memctl fill --count 16 --index 4 --len 8 --value 7
  memctl fill --count 16 --index 0 --len 16 --value 1 --uninitialized --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(opts)
		},
	}

	cmd.Flags().IntVar(&opts.count, "count", 16, "Number of elements in the buffer")
	cmd.Flags().IntVar(&opts.index, "index", 0, "First index to write")
	cmd.Flags().IntVar(&opts.length, "len", 0, "Number of elements to write")
	cmd.Flags().Int64Var(&opts.value, "value", 0, "Value to write")
	cmd.Flags().BoolVar(&opts.uninitialized, "uninitialized", false, "Construct into a fresh buffer")
	cmd.Flags().BoolVar(&opts.perElement, "per-element", false, "Use an element type with copy hooks")

	return cmd
}

func runFill(opts fillOptions) error {
	alloc, err := newAllocator(backend)
	if err != nil {
		return err
	}

	var res fillResult
	if opts.perElement {
		res = fillRange[element](alloc, opts)
	} else {
		res = fillRange[int64](alloc, opts)
	}
	res.Backend = backend
	logger.Info("fill finished", "status", res.Status, "path", res.Path, "backend", backend)

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		printInfo("fill [%d,%d) with %d over %d elements: %s (%s path)\n",
			opts.index, opts.index+opts.length, opts.value, opts.count, res.Status, res.Path)
		printInfo("values: %v\n", res.Values)
		printVerbose("allocs=%d frees=%d peak=%d bytes\n", res.Alloc.Allocs, res.Alloc.Frees, res.Alloc.PeakBytes)
	}

	if err := res.Status.Err(); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	if !alloc.Balanced() {
		logger.Error("allocator unbalanced", "command", "fill", "stats", alloc.Stats())
		return fmt.Errorf("fill: allocator unbalanced: %+v", alloc.Stats())
	}
	return nil
}

func fillRange[T cell](alloc *mem.CountingAllocator, opts fillOptions) fillResult {
	res := fillResult{Count: opts.count, Path: pathName[T]()}

	buf := mem.AllocateFrom[T](alloc, opts.count)
	if opts.uninitialized {
		res.Status = mem.UninitializedFillOfRange(buf, opts.index, opts.length, T(opts.value))
	} else {
		constructSequence(buf)
		res.Status = mem.FillOfRange(buf, opts.index, opts.length, T(opts.value))
	}
	res.Values = values(buf, -1)

	destructAll(buf)
	mem.DeallocateTo(alloc, buf)

	res.Alloc = alloc.Stats()
	return res
}
