// Package report summarizes and compares search results for display.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/skyroute/search"
)

// Run pairs a strategy name with its result.
type Run struct {
	Name   string
	Result search.Result
}

// Summary writes a short paragraph for one run.
func Summary(w io.Writer, r Run) error {
	if !r.Result.Found() {
		_, err := fmt.Fprintf(w, "%s found no path (visited %d nodes).\n", r.Name, r.Result.Visited)
		return err
	}
	_, err := fmt.Fprintf(w,
		"%s found a path of %d steps.\nNodes visited: %d\nPath cost: %.2f\nElapsed: %.2f ms\n",
		r.Name, r.Result.Steps(), r.Result.Visited, r.Result.Cost, r.Result.ElapsedMillis())
	return err
}

// Compare writes an aligned table with one column per run. Runs without a
// path show "-" for steps and cost.
func Compare(w io.Writer, runs ...Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "metric"
	steps, cost, visited, elapsed := "steps", "cost", "visited", "time (ms)"
	for _, r := range runs {
		header += "\t" + r.Name
		if r.Result.Found() {
			steps += fmt.Sprintf("\t%d", r.Result.Steps())
			cost += fmt.Sprintf("\t%.2f", r.Result.Cost)
		} else {
			steps += "\t-"
			cost += "\t-"
		}
		visited += fmt.Sprintf("\t%d", r.Result.Visited)
		elapsed += fmt.Sprintf("\t%.2f", r.Result.ElapsedMillis())
	}
	for _, line := range []string{header, steps, cost, visited, elapsed} {
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return err
		}
	}

	return tw.Flush()
}
