package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/slrkit/diag"
	"github.com/joshuapare/slrkit/internal/config"
	"github.com/joshuapare/slrkit/memory/alloc"
)

// app carries state resolved before a command runs.
type app struct {
	cfgFile string
	cfg     *config.Config
	sink    diag.Sink
	alloc   *alloc.Allocator
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "slrctl",
		Short: "Exercise the slrkit allocator, growable array and shared handles",
		Long: `slrctl drives the slrkit memory substrate from the command line. It can
print the capacity trace of the array growth policy, run a mixed workload and
report allocator statistics, or replay a YAML script of array and shared handle
operations step by step.

Settings come from flags, SLRCTL_ environment variables, slrctl.yaml and
built-in defaults, in that order.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Config file (default: ./slrctl.yaml if present)")
	pf.String("source", config.DefaultSource, "Allocator backing: heap or mmap")
	pf.Int64("limit", 0, "Cap on live allocator bytes, 0 for unlimited")
	pf.String("log-level", config.DefaultLogLevel, "Minimum severity: error, warning or info")
	pf.String("log-format", config.DefaultLogFormat, "Diagnostic format: console, text or json")
	pf.Bool("json", false, "Output in JSON format")

	root.AddCommand(
		newGrowthCmd(a),
		newStatsCmd(a),
		newReplayCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.sink = newSink(cfg, cmd.ErrOrStderr())
	diag.Install(a.sink)

	var src alloc.Source = alloc.NewHeapSource()
	if cfg.Source == "mmap" {
		src = alloc.NewMmapSource()
	}
	a.alloc = alloc.New(&alloc.Options{Source: src, Limit: cfg.Limit, Sink: a.sink})

	if cfg.FileUsed != "" {
		a.sink.Log(diag.LevelInfo, "Loaded config", "file", cfg.FileUsed)
	}
	return nil
}

// newSink builds the diagnostic sink for the configured format and level.
func newSink(cfg *config.Config, w io.Writer) diag.Sink {
	level := cfg.Level()
	opts := &slog.HandlerOptions{Level: level.Slog()}

	switch cfg.LogFormat {
	case "json":
		return diag.NewSlog(slog.New(slog.NewJSONHandler(w, opts)))
	case "text":
		return diag.NewSlog(slog.New(slog.NewTextHandler(w, opts)))
	default:
		return diag.NewConsole(w, level)
	}
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
