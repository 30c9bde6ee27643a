package api

// Result is one scored metric row as consumed by the reporting layer.
// A single requested metric may produce more than one row (the correction
// F1 metrics emit a micro and a sequence-averaged variant).
type Result struct {
	// Name is the display name of the row, e.g. "Sequence accuracy"
	Name string
	// Formatted is the value as it should appear in a report table
	Formatted string
	// Value is the raw score, used for sorting
	Value float64
	// LargerIsBetter indicates the sort direction for this row
	LargerIsBetter bool
}

// Corpus holds the three aligned sequence lists of one benchmark.
// Index i in each list refers to the same evaluation unit.
type Corpus struct {
	// Corrupted is the benchmark input text, one entry per line
	Corrupted []string
	// Predicted is the model output text, one entry per line
	Predicted []string
	// GroundTruth is the reference text, one entry per line
	GroundTruth []string
}

// Len returns the number of evaluation units in the corpus.
func (c Corpus) Len() int {
	return len(c.Corrupted)
}

// Validate checks that all three lists have the same length.
func (c Corpus) Validate() error {
	if len(c.Predicted) != len(c.Corrupted) || len(c.GroundTruth) != len(c.Corrupted) {
		return ErrLengthMismatch
	}
	return nil
}

// Metric computes one named metric over a full corpus.
type Metric interface {
	// Name returns the canonical request name, e.g. "sec_f1"
	Name() string
	// Compute scores the corpus and returns one or more result rows.
	// Compute must be a pure function of the corpus and never mutate it.
	Compute(c Corpus) ([]Result, error)
}
