package metrics

import (
	"tcbench/api"
	"tcbench/edits"
)

// SpellingCorrectionF1 returns the edit-level F1 metric for spelling
// correction benchmarks: edits are word substitutions, insertions and
// deletions relative to the corrupted input. Two rows are emitted, a micro
// F1 over summed counts and a sequence-averaged F1.
func SpellingCorrectionF1() api.Metric {
	return correctionF1{name: "sec_f1", split: edits.Words}
}

// WhitespaceCorrectionF1 is the character-granularity analogue of
// SpellingCorrectionF1, used for whitespace correction benchmarks.
func WhitespaceCorrectionF1() api.Metric {
	return correctionF1{name: "wsc_f1", split: edits.Chars}
}

type correctionF1 struct {
	name  string
	split func(string) []string
}

func (m correctionF1) Name() string { return m.name }

func (m correctionF1) Compute(c api.Corpus) ([]api.Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var total edits.Counts
	var f1Sum float64
	scored := 0
	for i, corrupted := range c.Corrupted {
		src := m.split(corrupted)
		predSet := edits.Extract(src, m.split(c.Predicted[i]))
		refSet := edits.Extract(src, m.split(c.GroundTruth[i]))
		counts := edits.Classify(predSet, refSet)
		total.Add(counts)

		// Lines where neither side made an edit carry no signal and are
		// excluded from the sequence average.
		if len(predSet) == 0 && len(refSet) == 0 {
			continue
		}
		_, _, f1 := counts.F1()
		f1Sum += f1
		scored++
	}

	_, _, micro := total.F1()
	seqAvg := 0.0
	if scored > 0 {
		seqAvg = f1Sum / float64(scored)
	}

	return []api.Result{
		{Name: "Micro F1", Formatted: percent(micro), Value: micro, LargerIsBetter: true},
		{Name: "Sequence-averaged F1", Formatted: percent(seqAvg), Value: seqAvg, LargerIsBetter: true},
	}, nil
}
