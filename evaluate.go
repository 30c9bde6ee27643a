package tcbench

import (
	"fmt"
	"sort"

	"tcbench/api"
	"tcbench/metrics"
	"tcbench/textio"
)

// Evaluate loads the three aligned benchmark files, applies the lowercase
// policy to the predictions, and computes the requested metrics. Result
// rows are emitted in ascending alphabetical order of the requested metric
// names, independent of the order given.
func Evaluate(corruptedPath, groundtruthPath, predictedPath string, names []string, lowercase textio.LowercasePolicy) ([]Result, error) {
	corrupted, err := textio.LoadLines(corruptedPath)
	if err != nil {
		return nil, err
	}
	groundtruths, err := textio.LoadLines(groundtruthPath)
	if err != nil {
		return nil, err
	}
	predictions, err := textio.LoadLines(predictedPath)
	if err != nil {
		return nil, err
	}

	flags, err := lowercase.Resolve(len(predictions))
	if err != nil {
		return nil, err
	}

	c := api.Corpus{
		Corrupted:   corrupted,
		Predicted:   textio.ApplyLowercase(predictions, flags),
		GroundTruth: groundtruths,
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %d corrupted, %d predicted, %d groundtruth lines",
			err, len(corrupted), len(predictions), len(groundtruths))
	}

	return EvaluateCorpus(c, names)
}

// EvaluateCorpus computes the requested metrics over an in-memory corpus.
func EvaluateCorpus(c Corpus, names []string) ([]Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Requested names form a set: dedupe, then fix a deterministic order.
	sorted := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	var results []Result
	for _, name := range sorted {
		m, err := metrics.For(name)
		if err != nil {
			return nil, err
		}
		rows, err := m.Compute(c)
		if err != nil {
			return nil, fmt.Errorf("compute %s: %w", name, err)
		}
		results = append(results, rows...)
	}
	return results, nil
}
