package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slrkit/containers/dynarray"
	"github.com/joshuapare/slrkit/internal/config"
	"github.com/joshuapare/slrkit/memory/alloc"
)

func newGrowthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Print the capacity trace of the growth policy",
		Long: `The growth command appends to an array until its capacity has grown
--steps times and prints each capacity together with the bytes the
allocator holds for it. Capacities follow floor(cap * 1.4) + 1.

Example:
  slrctl growth
  slrctl growth --steps 30 --json
  slrctl growth --limit 256`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth(cmd.OutOrStdout(), a.cfg, a.alloc)
		},
	}
	cmd.Flags().Int("steps", config.DefaultSteps, "Number of capacity increases to trace")
	return cmd
}

type growthStep struct {
	Step     int   `json:"step"`
	Capacity int   `json:"capacity"`
	Added    int   `json:"added"`
	Bytes    int64 `json:"bytes"`
}

func runGrowth(w io.Writer, cfg *config.Config, a *alloc.Allocator) error {
	arr := dynarray.New[int](&dynarray.Options[int]{Allocator: a})
	defer arr.Destroy()

	want := dynarray.GrowthTrace(cfg.Steps)
	steps := make([]growthStep, 0, cfg.Steps)
	prev := 0
	for len(steps) < cfg.Steps {
		if err := arr.Add(arr.Len()); err != nil {
			return fmt.Errorf("step %d: %w", len(steps)+1, err)
		}
		if c := arr.Cap(); c != prev {
			if c != want[len(steps)] {
				return fmt.Errorf("step %d: capacity %d, policy says %d", len(steps)+1, c, want[len(steps)])
			}
			steps = append(steps, growthStep{
				Step:     len(steps) + 1,
				Capacity: c,
				Added:    c - prev,
				Bytes:    a.Stats().LiveBytes,
			})
			prev = c
		}
	}

	if cfg.JSON {
		return printJSON(w, steps)
	}

	t := newTable(w, "Step", "Capacity", "Added", "Bytes")
	alignRight(t, 1, 2, 3, 4)
	for _, s := range steps {
		t.AppendRow([]any{s.Step, formatNumber(s.Capacity), "+" + formatNumber(s.Added), formatNumber(s.Bytes)})
	}
	t.Render()
	return nil
}
