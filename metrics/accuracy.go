package metrics

import (
	"fmt"
	"strings"

	"tcbench/api"
)

// WordAccuracy returns the metric for word-level spelling-error detection:
// exact-match accuracy over whitespace-split tokens flattened across the
// whole corpus. Tokens are paired positionally, so the predicted and
// ground-truth token counts must agree.
func WordAccuracy() api.Metric {
	return wordAccuracy{}
}

type wordAccuracy struct{}

func (wordAccuracy) Name() string { return "word_acc" }

func (wordAccuracy) Compute(c api.Corpus) ([]api.Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var predictions, labels []string
	for _, line := range c.Predicted {
		predictions = append(predictions, strings.Fields(line)...)
	}
	for _, line := range c.GroundTruth {
		labels = append(labels, strings.Fields(line)...)
	}
	if len(predictions) != len(labels) {
		return nil, fmt.Errorf("%w: %d predicted tokens vs %d groundtruth tokens",
			api.ErrLengthMismatch, len(predictions), len(labels))
	}

	acc := accuracy(predictions, labels)
	return []api.Result{
		{Name: "Word accuracy", Formatted: percent(acc), Value: acc, LargerIsBetter: true},
	}, nil
}

// SequenceAccuracy returns the fraction of lines where the prediction
// equals the ground truth exactly (case-sensitive; the lowercase policy has
// already been applied at the boundary).
func SequenceAccuracy() api.Metric {
	return sequenceAccuracy{}
}

type sequenceAccuracy struct{}

func (sequenceAccuracy) Name() string { return "seq_acc" }

func (sequenceAccuracy) Compute(c api.Corpus) ([]api.Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	acc := accuracy(c.Predicted, c.GroundTruth)
	return []api.Result{
		{Name: "Sequence accuracy", Formatted: percent(acc), Value: acc, LargerIsBetter: true},
	}, nil
}

// accuracy is the exact-match fraction over positionally paired items.
// An empty input yields 0.
func accuracy(predictions, labels []string) float64 {
	if len(predictions) == 0 {
		return 0
	}
	matches := 0
	for i, p := range predictions {
		if p == labels[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(predictions))
}
