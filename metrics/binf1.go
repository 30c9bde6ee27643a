package metrics

import (
	"fmt"
	"strconv"
	"strings"

	"tcbench/api"
)

// BinaryF1 returns the metric for the spelling-error detection tasks: F1
// over 0/1 token labels flattened across the whole corpus. Predictions and
// ground truth are space-joined label strings, one token per word (sedw) or
// a single token per line (seds).
func BinaryF1() api.Metric {
	return binaryF1{}
}

type binaryF1 struct{}

func (binaryF1) Name() string { return "bin_f1" }

func (binaryF1) Compute(c api.Corpus) ([]api.Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	predictions, err := flattenLabels(c.Predicted, "prediction")
	if err != nil {
		return nil, err
	}
	labels, err := flattenLabels(c.GroundTruth, "groundtruth")
	if err != nil {
		return nil, err
	}
	if len(predictions) != len(labels) {
		return nil, fmt.Errorf("%w: %d predicted labels vs %d groundtruth labels",
			api.ErrLengthMismatch, len(predictions), len(labels))
	}

	var tp, fp, fn int
	for i, p := range predictions {
		switch {
		case p && labels[i]:
			tp++
		case p && !labels[i]:
			fp++
		case !p && labels[i]:
			fn++
		}
	}

	var precision, recall, f1 float64
	if tp+fp > 0 {
		precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		recall = float64(tp) / float64(tp+fn)
	}
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	return []api.Result{
		{Name: "F1", Formatted: percent(f1), Value: f1, LargerIsBetter: true},
	}, nil
}

// flattenLabels parses every whitespace-separated token of every line as an
// integer label, nonzero meaning "error".
func flattenLabels(lines []string, what string) ([]bool, error) {
	var labels []bool
	for i, line := range lines {
		for _, tok := range strings.Fields(line) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("parse binary %s label %q on line %d: %w", what, tok, i+1, err)
			}
			labels = append(labels, v != 0)
		}
	}
	return labels, nil
}
