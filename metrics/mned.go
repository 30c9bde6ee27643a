package metrics

import (
	"fmt"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"tcbench/api"
)

// Unit costs; the library default charges 2 for a substitution.
var editDistanceOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

// MeanNormalizedEditDistance returns the MNED metric: the mean over all
// lines of the rune-level edit distance between prediction and ground
// truth, normalized by the ground-truth length. Lower is better.
func MeanNormalizedEditDistance() api.Metric {
	return mned{}
}

type mned struct{}

func (mned) Name() string { return "mned" }

func (mned) Compute(c api.Corpus) ([]api.Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var sum float64
	for i, p := range c.Predicted {
		sum += normalizedEditDistance(p, c.GroundTruth[i])
	}
	value := 0.0
	if c.Len() > 0 {
		value = sum / float64(c.Len())
	}

	return []api.Result{
		{Name: "MNED", Formatted: fmt.Sprintf("%.4f", value), Value: value, LargerIsBetter: false},
	}, nil
}

// normalizedEditDistance is dist(predicted, groundtruth) / len(groundtruth)
// on runes. An empty ground truth contributes 0 against an empty prediction
// and the maximal penalty 1 otherwise (the edit distance then equals the
// prediction length).
func normalizedEditDistance(predicted, groundtruth string) float64 {
	gt := []rune(groundtruth)
	if len(gt) == 0 {
		if len([]rune(predicted)) == 0 {
			return 0
		}
		return 1
	}
	dist := levenshtein.DistanceForStrings([]rune(predicted), gt, editDistanceOptions)
	return float64(dist) / float64(len(gt))
}
