// Package baselines produces prediction files for the benchmark tasks: the
// trivial per-task dummies and a Gemini chat-completion baseline.
package baselines

import (
	"context"
	"strings"

	"tcbench"
)

// Baseline turns benchmark input sequences into predictions, one output
// line per input line.
type Baseline interface {
	// Name identifies the baseline, used as the prediction file basename
	Name() string
	// Run maps every input sequence to a prediction
	Run(ctx context.Context, sequences []string) ([]string, error)
}

// Dummy returns the trivial baseline of a task: "no error" labels for the
// detection tasks, the unchanged input for the correction tasks.
func Dummy(task tcbench.Task) Baseline {
	return dummy{task: task}
}

type dummy struct {
	task tcbench.Task
}

func (dummy) Name() string { return "dummy" }

func (d dummy) Run(_ context.Context, sequences []string) ([]string, error) {
	out := make([]string, len(sequences))
	for i, s := range sequences {
		switch d.task {
		case tcbench.TaskSeds:
			out[i] = "0"
		case tcbench.TaskSedw:
			labels := make([]string, len(strings.Fields(s)))
			for j := range labels {
				labels[j] = "0"
			}
			out[i] = strings.Join(labels, " ")
		default:
			// sec and wsc pass the input through unchanged
			out[i] = s
		}
	}
	return out, nil
}

// cleanText collapses whitespace runs into single spaces and trims the
// ends, so model output lines up with the benchmark's one-line-per-unit
// format.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
