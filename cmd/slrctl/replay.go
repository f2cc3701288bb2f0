package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/slrkit/containers/dynarray"
	"github.com/joshuapare/slrkit/internal/config"
	"github.com/joshuapare/slrkit/memory/alloc"
	"github.com/joshuapare/slrkit/memory/shared"
)

func newReplayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a script of array and shared handle operations",
		Long: `The replay command runs the steps of a YAML script against one integer
array and a set of named shared handles, printing the state after each step.

Array ops:  add, insert, remove, remove_all, fit, set_capacity, contains
Handle ops: share, clone, move, assign, release

A step that fails stops the replay unless it sets expect_error: true.

Example script:
  steps:
    - {op: add, value: 5}
    - {op: add, value: 7}
    - {op: insert, value: 6, index: 1}
    - {op: remove, index: 0}
    - {op: share, name: a, value: 42}
    - {op: clone, name: b, from: a}
    - {op: release, name: a}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := loadScript(args[0])
			if err != nil {
				return err
			}
			return runReplay(cmd.OutOrStdout(), a.cfg, a.alloc, script)
		},
	}
}

// Script is a replayable sequence of operations.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one operation. Fields not used by Op are ignored.
type Step struct {
	Op          string `yaml:"op"`
	Value       int    `yaml:"value"`
	Index       int    `yaml:"index"`
	Capacity    int    `yaml:"capacity"`
	Name        string `yaml:"name"`
	From        string `yaml:"from"`
	ExpectError bool   `yaml:"expect_error"`
}

var errUnknownOp = errors.New("unknown op")

func loadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	for i, st := range s.Steps {
		if !slices.Contains(knownOps, st.Op) {
			return nil, fmt.Errorf("step %d: %w %q", i+1, errUnknownOp, st.Op)
		}
	}
	return &s, nil
}

var knownOps = []string{
	"add", "insert", "remove", "remove_all", "fit", "set_capacity", "contains",
	"share", "clone", "move", "assign", "release",
}

type handleState struct {
	Name  string `json:"name"`
	Value *int   `json:"value,omitempty"`
	Refs  uint64 `json:"refs"`
}

type stepState struct {
	Step    int           `json:"step"`
	Op      string        `json:"op"`
	Error   string        `json:"error,omitempty"`
	Found   *bool         `json:"found,omitempty"`
	Values  []int         `json:"values"`
	Len     int           `json:"len"`
	Cap     int           `json:"cap"`
	Handles []handleState `json:"handles,omitempty"`
}

// replayer owns the array and handles a script operates on.
type replayer struct {
	arr     *dynarray.Array[int]
	handles map[string]*shared.Handle[int]
	opts    *shared.Options[int]
}

func newReplayer(a *alloc.Allocator) *replayer {
	return &replayer{
		arr:     dynarray.New[int](&dynarray.Options[int]{Allocator: a}),
		handles: make(map[string]*shared.Handle[int]),
		opts:    &shared.Options[int]{Allocator: a},
	}
}

func (r *replayer) close() {
	for _, h := range r.handles {
		h.Release()
	}
	r.arr.Destroy()
}

// slot returns the handle named name, creating an empty one on first use.
func (r *replayer) slot(name string) *shared.Handle[int] {
	h, ok := r.handles[name]
	if !ok {
		h = &shared.Handle[int]{}
		r.handles[name] = h
	}
	return h
}

func (r *replayer) apply(st Step) (found *bool, err error) {
	switch st.Op {
	case "add":
		return nil, r.arr.Add(st.Value)
	case "insert":
		return nil, r.arr.Insert(st.Value, st.Index)
	case "remove":
		return nil, r.arr.Remove(st.Index)
	case "remove_all":
		return nil, r.arr.RemoveAll()
	case "fit":
		return nil, r.arr.FitCapacityToElements()
	case "set_capacity":
		return nil, r.arr.SetCapacity(st.Capacity)
	case "contains":
		ok := dynarray.ContainsComparable(r.arr, st.Value)
		return &ok, nil
	}

	if st.Name == "" {
		return nil, fmt.Errorf("%s needs a name", st.Op)
	}
	dst := r.slot(st.Name)

	switch st.Op {
	case "share":
		h, err := shared.New(st.Value, r.opts)
		if err != nil {
			return nil, err
		}
		dst.AssignMove(&h)
	case "clone", "move", "assign":
		src, ok := r.handles[st.From]
		if !ok || !src.IsHoldingReference() {
			return nil, fmt.Errorf("%s from %q: %w", st.Op, st.From, shared.ErrEmptyHandle)
		}
		switch st.Op {
		case "clone":
			c := src.Clone()
			dst.AssignMove(&c)
		case "move":
			dst.AssignMove(src)
		case "assign":
			dst.Assign(*src)
		}
	case "release":
		dst.Release()
	default:
		return nil, fmt.Errorf("%w %q", errUnknownOp, st.Op)
	}
	return nil, nil
}

func (r *replayer) state(n int, st Step, found *bool, err error) stepState {
	s := stepState{
		Step:   n,
		Op:     st.Op,
		Found:  found,
		Values: r.arr.Values(),
		Len:    r.arr.Len(),
		Cap:    r.arr.Cap(),
	}
	if err != nil {
		s.Error = err.Error()
	}

	names := make([]string, 0, len(r.handles))
	for name := range r.handles {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		h := r.handles[name]
		hs := handleState{Name: name}
		if h.IsHoldingReference() {
			v := h.Value()
			hs.Value = &v
			hs.Refs, _ = h.ReferenceCount()
		}
		s.Handles = append(s.Handles, hs)
	}
	return s
}

func runReplay(w io.Writer, cfg *config.Config, a *alloc.Allocator, script *Script) error {
	r := newReplayer(a)
	defer r.close()

	states := make([]stepState, 0, len(script.Steps))
	for i, st := range script.Steps {
		found, err := r.apply(st)
		s := r.state(i+1, st, found, err)
		states = append(states, s)
		if !cfg.JSON {
			printStep(w, s)
		}

		switch {
		case err != nil && !st.ExpectError:
			if cfg.JSON {
				_ = printJSON(w, states)
			}
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		case err == nil && st.ExpectError:
			if cfg.JSON {
				_ = printJSON(w, states)
			}
			return fmt.Errorf("step %d (%s): expected an error", i+1, st.Op)
		}
	}

	if cfg.JSON {
		return printJSON(w, states)
	}
	return nil
}

func printStep(w io.Writer, s stepState) {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %-12s %v len=%d cap=%d", s.Step, s.Op, s.Values, s.Len, s.Cap)
	if s.Found != nil {
		fmt.Fprintf(&b, " found=%t", *s.Found)
	}
	for _, h := range s.Handles {
		if h.Value == nil {
			fmt.Fprintf(&b, " %s=empty", h.Name)
			continue
		}
		fmt.Fprintf(&b, " %s=%d(refs=%d)", h.Name, *h.Value, h.Refs)
	}
	if s.Error != "" {
		fmt.Fprintf(&b, " error=%q", s.Error)
	}
	fmt.Fprintln(w, b.String())
}
