package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rawmem/internal/logger"
	"github.com/joshuapare/rawmem/mem"
	"github.com/joshuapare/rawmem/status"
)

type copyOptions struct {
	count         int
	dst           int
	src           int
	length        int
	uninitialized bool
	perElement    bool
	show          int
}

type copyResult struct {
	Backend string         `json:"backend"`
	Count   int            `json:"count"`
	Path    string         `json:"path"`
	Status  status.Code    `json:"status"`
	Values  []int64        `json:"values"`
	Alloc   mem.AllocStats `json:"alloc"`
}

func init() {
	rootCmd.AddCommand(newCopyCmd())
}

func newCopyCmd() *cobra.Command {
	var opts copyOptions

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy a range of elements within a buffer",
		Long: `The copy command fills a buffer with 0..count-1 and copies len elements from
index --src to index --dst. Overlapping ranges are allowed.

With --uninitialized the destination is a second, freshly allocated buffer and the
elements are constructed rather than assigned.

Example:
  memctl copy --count 128 --dst 20 --src 0 --len 108
  memctl copy --count 128 --dst 0 --src 20 --len 108 --per-element --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(opts)
		},
	}

	cmd.Flags().IntVar(&opts.count, "count", 128, "Number of elements in the buffer")
	cmd.Flags().IntVar(&opts.dst, "dst", 0, "Destination index")
	cmd.Flags().IntVar(&opts.src, "src", 0, "Source index")
	cmd.Flags().IntVar(&opts.length, "len", 0, "Number of elements to copy")
	cmd.Flags().BoolVar(&opts.uninitialized, "uninitialized", false, "Construct into a fresh buffer")
	cmd.Flags().BoolVar(&opts.perElement, "per-element", false, "Use an element type with copy hooks")
	cmd.Flags().IntVar(&opts.show, "show", -1, "Number of leading values to print (-1 for all)")

	return cmd
}

func runCopy(opts copyOptions) error {
	alloc, err := newAllocator(backend)
	if err != nil {
		return err
	}

	var res copyResult
	if opts.perElement {
		res = copyRange[element](alloc, opts)
	} else {
		res = copyRange[int64](alloc, opts)
	}
	res.Backend = backend
	logger.Info("copy finished", "status", res.Status, "path", res.Path, "backend", backend)

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		printInfo("copy [%d,%d) -> [%d,%d) over %d elements: %s (%s path)\n",
			opts.src, opts.src+opts.length, opts.dst, opts.dst+opts.length, opts.count, res.Status, res.Path)
		printInfo("values: %v\n", res.Values)
		printVerbose("allocs=%d frees=%d peak=%d bytes\n", res.Alloc.Allocs, res.Alloc.Frees, res.Alloc.PeakBytes)
	}

	if err := res.Status.Err(); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if !alloc.Balanced() {
		logger.Error("allocator unbalanced", "command", "copy", "stats", alloc.Stats())
		return fmt.Errorf("copy: allocator unbalanced: %+v", alloc.Stats())
	}
	return nil
}

func copyRange[T cell](alloc *mem.CountingAllocator, opts copyOptions) copyResult {
	res := copyResult{Count: opts.count, Path: pathName[T]()}

	buf := mem.AllocateFrom[T](alloc, opts.count)
	constructSequence(buf)

	if opts.uninitialized {
		dst := mem.AllocateFrom[T](alloc, opts.count)
		res.Status = mem.UninitializedCopyOfRange(dst, buf, opts.dst, opts.src, opts.length)
		res.Values = values(dst, opts.show)
		// Slots outside the copied range were never constructed; Destruct only
		// zeroes them, which is harmless for cell types.
		destructAll(dst)
		mem.DeallocateTo(alloc, dst)
	} else {
		res.Status = mem.CopyWithin(buf, opts.dst, opts.src, opts.length)
		res.Values = values(buf, opts.show)
	}

	destructAll(buf)
	mem.DeallocateTo(alloc, buf)

	res.Alloc = alloc.Stats()
	return res
}
