// Package tcbench evaluates text-correction model outputs against benchmark
// ground truth. It covers four task families: sequence-level and word-level
// spelling-error detection, spelling-error correction, and whitespace
// correction.
package tcbench

import "tcbench/api"

type Result = api.Result
type Corpus = api.Corpus
type Metric = api.Metric
