// Package report assembles the comparison table over the evaluations of
// several prediction files on one benchmark.
package report

import (
	"fmt"
	"sort"

	"tcbench"
	"tcbench/api"
	"tcbench/table"
)

// Entry is the evaluation of one prediction file.
type Entry struct {
	// Name identifies the model, usually the prediction file basename
	Name string
	// Results are the metric rows returned by tcbench.Evaluate
	Results []api.Result
}

// Render produces the comparison table for a benchmark. sortBy, when
// non-empty, must equal the display name of one metric row; entries are
// then ordered by that row's value, direction following its
// larger-is-better flag. An empty sortBy keeps the given order.
func Render(task tcbench.Task, benchmark string, entries []Entry, sortBy string) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("render report: no evaluations given")
	}

	headers := make([]string, 0, len(entries[0].Results))
	for _, r := range entries[0].Results {
		headers = append(headers, r.Name)
	}
	for _, e := range entries[1:] {
		if len(e.Results) != len(headers) {
			return "", fmt.Errorf("render report: %s has %d metric rows, expected %d",
				e.Name, len(e.Results), len(headers))
		}
	}

	if sortBy != "" {
		idx := -1
		for i, h := range headers {
			if h == sortBy {
				idx = i
				break
			}
		}
		if idx < 0 {
			return "", fmt.Errorf("sort metric %q is not one of %v", sortBy, headers)
		}
		sorted := make([]Entry, len(entries))
		copy(sorted, entries)
		larger := sorted[0].Results[idx].LargerIsBetter
		sort.SliceStable(sorted, func(i, j int) bool {
			if larger {
				return sorted[i].Results[idx].Value > sorted[j].Results[idx].Value
			}
			return sorted[i].Results[idx].Value < sorted[j].Results[idx].Value
		})
		entries = sorted
	}

	data := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := make([]string, 0, len(headers)+1)
		row = append(row, e.Name)
		for _, r := range e.Results {
			row = append(row, r.Formatted)
		}
		data = append(data, row)
	}

	top := make([]string, len(headers)+1)
	top[0] = task.DisplayName()
	second := append([]string{benchmark}, headers...)

	alignments := make([]table.Alignment, len(headers)+1)
	alignments[0] = table.AlignLeft
	for i := 1; i < len(alignments); i++ {
		alignments[i] = table.AlignRight
	}

	return table.Generate([][]string{top, second}, data, alignments), nil
}
