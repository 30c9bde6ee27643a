package api

import "errors"

var (
	// ErrLengthMismatch is returned when the corrupted, predicted,
	// ground-truth or lowercase-flag line counts disagree
	ErrLengthMismatch = errors.New("input files must have the same number of lines")
	// ErrUnknownMetric is returned when a requested metric name is not supported
	ErrUnknownMetric = errors.New("unknown metric")
	// ErrUnknownTask is returned when a benchmark type has no metric mapping
	ErrUnknownTask = errors.New("unknown benchmark type")
)
