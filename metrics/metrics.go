// Package metrics implements the corpus-level metrics of the benchmark
// suite. Every metric is a pure function of the corpus; construction is
// cheap and the returned values carry no state between computations.
package metrics

import (
	"fmt"
	"sort"

	"tcbench/api"
)

// For returns the metric registered under the given request name.
func For(name string) (api.Metric, error) {
	switch name {
	case "bin_f1":
		return BinaryF1(), nil
	case "word_acc":
		return WordAccuracy(), nil
	case "seq_acc":
		return SequenceAccuracy(), nil
	case "mned":
		return MeanNormalizedEditDistance(), nil
	case "sec_f1":
		return SpellingCorrectionF1(), nil
	case "wsc_f1":
		return WhitespaceCorrectionF1(), nil
	default:
		return nil, fmt.Errorf("%w: %q", api.ErrUnknownMetric, name)
	}
}

// Names returns the supported request names in ascending order.
func Names() []string {
	names := []string{"bin_f1", "mned", "seq_acc", "sec_f1", "word_acc", "wsc_f1"}
	sort.Strings(names)
	return names
}

// percent formats a [0, 1] score the way the report tables expect it.
func percent(v float64) string {
	return fmt.Sprintf("%.2f", 100*v)
}
