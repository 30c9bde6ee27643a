package tcbench

import "tcbench/api"

var (
	// ErrLengthMismatch is returned when the corrupted, predicted,
	// ground-truth or lowercase-flag line counts disagree
	ErrLengthMismatch = api.ErrLengthMismatch
	// ErrUnknownMetric is returned when a requested metric name is not supported
	ErrUnknownMetric = api.ErrUnknownMetric
	// ErrUnknownTask is returned when a benchmark type has no metric mapping
	ErrUnknownTask = api.ErrUnknownTask
)
