package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/joshuapare/slrkit/containers/dynarray"
	"github.com/joshuapare/slrkit/internal/config"
	"github.com/joshuapare/slrkit/memory/alloc"
	"github.com/joshuapare/slrkit/memory/shared"
)

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Run a mixed workload and show allocator statistics",
		Long: `The stats command fills an array, inserts into its middle, trims it and
fits its capacity, shares one object across many handles stored in a second
array, and resizes a raw block. It then tears everything down and prints the
allocator counters at peak and after teardown.

Example:
  slrctl stats
  slrctl stats --adds 100000 --shared 500
  slrctl stats --source mmap --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), a.cfg, a.alloc)
		},
	}
	cmd.Flags().Int("adds", config.DefaultAdds, "Elements appended to the array")
	cmd.Flags().Int("shared", config.DefaultShared, "Extra handles sharing one object")
	return cmd
}

// payload is the object shared by the workload's handles.
type payload struct {
	label  string
	buffer []byte
}

type workloadReport struct {
	ArrayLen   int         `json:"array_len"`
	ArrayCap   int         `json:"array_cap"`
	SharedRefs uint64      `json:"shared_refs"`
	Destroyed  int         `json:"destroyed"`
	Peak       alloc.Stats `json:"peak"`
	Final      alloc.Stats `json:"final"`
}

func runStats(w io.Writer, cfg *config.Config, a *alloc.Allocator) error {
	report, err := runWorkload(cfg.Adds, cfg.Shared, a)
	if err != nil {
		return err
	}

	if cfg.JSON {
		return printJSON(w, report)
	}

	fmt.Fprintf(w, "Workload: %s adds, %s shared handles, source %s\n\n",
		formatNumber(cfg.Adds), formatNumber(cfg.Shared), report.Final.Source)

	t := newTable(w, "Metric", "Peak", "Final")
	alignRight(t, 2, 3)
	t.AppendRows([]table.Row{
		{"Alloc calls", formatNumber(report.Peak.AllocCalls), formatNumber(report.Final.AllocCalls)},
		{"Resize calls", formatNumber(report.Peak.ResizeCalls), formatNumber(report.Final.ResizeCalls)},
		{"Release calls", formatNumber(report.Peak.ReleaseCalls), formatNumber(report.Final.ReleaseCalls)},
		{"Failed calls", formatNumber(report.Peak.FailedCalls), formatNumber(report.Final.FailedCalls)},
		{"Live blocks", formatNumber(report.Peak.LiveBlocks), formatNumber(report.Final.LiveBlocks)},
		{"Live bytes", formatNumber(report.Peak.LiveBytes), formatNumber(report.Final.LiveBytes)},
		{"Peak bytes", formatNumber(report.Peak.PeakBytes), formatNumber(report.Final.PeakBytes)},
	})
	t.Render()

	fmt.Fprintf(w, "\nArray: len %s, cap %s\n", formatNumber(report.ArrayLen), formatNumber(report.ArrayCap))
	fmt.Fprintf(w, "Shared: %s references, destroyed %d time(s)\n", formatNumber(report.SharedRefs), report.Destroyed)
	return nil
}

// runWorkload exercises every allocation path once and returns the counters
// at peak and after teardown.
func runWorkload(adds, extra int, a *alloc.Allocator) (*workloadReport, error) {
	report := &workloadReport{}

	arr := dynarray.New[int](&dynarray.Options[int]{Allocator: a})
	defer arr.Destroy()

	for i := range adds {
		if err := arr.Add(i); err != nil {
			return nil, fmt.Errorf("add %d: %w", i, err)
		}
	}
	for i := range adds / 10 {
		if err := arr.Insert(-i, arr.Len()/2); err != nil {
			return nil, fmt.Errorf("insert %d: %w", i, err)
		}
	}
	for arr.Len() > adds/2 {
		if err := arr.Remove(arr.Len() - 1); err != nil {
			return nil, fmt.Errorf("remove: %w", err)
		}
	}
	if err := arr.FitCapacityToElements(); err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	report.ArrayLen, report.ArrayCap = arr.Len(), arr.Cap()

	root, err := shared.New(payload{label: "workload", buffer: make([]byte, 256)}, &shared.Options[payload]{
		Allocator: a,
		Destroy:   func(*payload) { report.Destroyed++ },
	})
	if err != nil {
		return nil, fmt.Errorf("share: %w", err)
	}
	defer root.Release()

	handles := dynarray.New[shared.Handle[payload]](&dynarray.Options[shared.Handle[payload]]{Allocator: a})
	defer handles.Destroy()
	for i := range extra {
		h := root.Clone()
		if err := handles.Add(h); err != nil {
			h.Release()
			return nil, fmt.Errorf("clone %d: %w", i, err)
		}
	}
	if report.SharedRefs, err = root.ReferenceCount(); err != nil {
		return nil, err
	}

	blk, err := a.Alloc(64)
	if err != nil {
		return nil, fmt.Errorf("block: %w", err)
	}
	if err := blk.Resize(4096); err != nil {
		_ = blk.Release()
		return nil, fmt.Errorf("block resize: %w", err)
	}
	report.Peak = a.Stats()
	if err := blk.Release(); err != nil {
		return nil, fmt.Errorf("block release: %w", err)
	}

	handles.Destroy()
	root.Release()
	arr.Destroy()
	report.Final = a.Stats()
	return report, nil
}
