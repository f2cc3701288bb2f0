// Command benchmark_parser turns `go test -bench` output for the allocator
// into a markdown report comparing the heap and mmap sources.
//
//	go test -run=^$ -bench=. -benchmem ./memory/alloc | go run ./scripts -output bench.md
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	Case        string
	Source      string // "heap" or "mmap"
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ComparisonResult pairs the heap and mmap runs of one operation and case.
type ComparisonResult struct {
	Operation  string
	Case       string
	HeapNs     float64
	MmapNs     float64
	Ratio      float64 // MmapNs / HeapNs
	HeapAllocs int64
	MmapAllocs int64
	HeapOnly   bool
}

var (
	inputFile  = pflag.String("input", "", "Input file with benchmark output (stdin if not specified)")
	outputFile = pflag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = pflag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	pflag.Parse()

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results := parseBenchmarks(bufio.NewScanner(in))
	comparisons := generateComparisons(results)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d results, %d comparisons\n", len(results), len(comparisons))
	}

	report := generateMarkdownReport(comparisons, time.Now())

	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(report), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

// BenchmarkAlloc/heap/4096-8    1000000    1042 ns/op    4104 B/op    1 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+B/op)?(?:\s+([\d.]+)\s+allocs/op)?`,
)

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	for scanner.Scan() {
		line := scanner.Text()

		// Lines from `go test -json` carry the text in Output.
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		// Benchmark<Operation>/<source>/<case>-<procs>
		parts := strings.Split(matches[1], "/")
		if len(parts) < 3 {
			continue
		}

		r := BenchmarkResult{
			Name:      matches[1],
			Operation: strings.TrimPrefix(parts[0], "Benchmark"),
			Source:    parts[1],
			Case:      trimProcs(parts[len(parts)-1]),
		}
		r.Iterations, _ = strconv.Atoi(matches[2])
		r.NsPerOp, _ = strconv.ParseFloat(matches[3], 64)
		if matches[4] != "" {
			r.BytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
		}
		if matches[5] != "" {
			r.AllocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}
		results = append(results, r)
	}

	return results
}

// trimProcs drops the -N GOMAXPROCS suffix.
func trimProcs(s string) string {
	if i := strings.LastIndex(s, "-"); i > 0 {
		if _, err := strconv.Atoi(s[i+1:]); err == nil {
			return s[:i]
		}
	}
	return s
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	type key struct {
		operation string
		caseName  string
	}

	grouped := make(map[key]map[string]BenchmarkResult)
	for _, r := range results {
		k := key{r.Operation, r.Case}
		if grouped[k] == nil {
			grouped[k] = make(map[string]BenchmarkResult)
		}
		// Non-unix builds report the fallback as "mmap(heap)".
		grouped[k][strings.TrimSuffix(r.Source, "(heap)")] = r
	}

	var comparisons []ComparisonResult
	for k, sources := range grouped {
		heap, hasHeap := sources["heap"]
		if !hasHeap {
			continue
		}
		c := ComparisonResult{
			Operation:  k.operation,
			Case:       k.caseName,
			HeapNs:     heap.NsPerOp,
			HeapAllocs: heap.AllocsPerOp,
		}
		if mmap, ok := sources["mmap"]; ok && heap.NsPerOp > 0 {
			c.MmapNs = mmap.NsPerOp
			c.MmapAllocs = mmap.AllocsPerOp
			c.Ratio = mmap.NsPerOp / heap.NsPerOp
		} else {
			c.HeapOnly = true
		}
		comparisons = append(comparisons, c)
	}

	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].Operation != comparisons[j].Operation {
			return comparisons[i].Operation < comparisons[j].Operation
		}
		return comparisons[i].Case < comparisons[j].Case
	})
	return comparisons
}

func generateMarkdownReport(comparisons []ComparisonResult, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Allocator Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format("2006-01-02 15:04:05")))

	mmapFaster, heapFaster := 0, 0
	for _, c := range comparisons {
		switch {
		case c.HeapOnly:
		case c.Ratio < 1.0:
			mmapFaster++
		case c.Ratio > 1.0:
			heapFaster++
		}
	}
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Comparisons**: %d\n", len(comparisons)))
	sb.WriteString(fmt.Sprintf("- heap faster: %d\n", heapFaster))
	sb.WriteString(fmt.Sprintf("- mmap faster: %d\n\n", mmapFaster))

	sb.WriteString("## Detailed Results\n\n")
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Operation", "Case", "heap (ns/op)", "mmap (ns/op)", "mmap/heap", "Allocs (heap vs mmap)"})
	for _, c := range comparisons {
		if c.HeapOnly {
			t.AppendRow(table.Row{c.Operation, c.Case, formatNumber(c.HeapNs), "*N/A*", "*heap only*", c.HeapAllocs})
			continue
		}
		t.AppendRow(table.Row{
			c.Operation, c.Case,
			formatNumber(c.HeapNs), formatNumber(c.MmapNs),
			fmt.Sprintf("%.2fx", c.Ratio),
			fmt.Sprintf("%d vs %d", c.HeapAllocs, c.MmapAllocs),
		})
	}
	sb.WriteString(t.RenderMarkdown())
	sb.WriteString("\n")
	return sb.String()
}

func formatNumber(n float64) string {
	switch {
	case n >= 1e6:
		return fmt.Sprintf("%.2fM", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.2fK", n/1e3)
	default:
		return fmt.Sprintf("%.0f", n)
	}
}
