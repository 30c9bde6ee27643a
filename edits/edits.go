// Package edits derives and classifies the atomic corrections separating a
// corrupted sequence from a corrected one. It is the leaf of the metric
// engine: the correction F1 metrics extract one edit set for the prediction
// and one for the ground truth, both relative to the corrupted input, and
// count which predicted edits match the reference.
package edits

import "strings"

// Kind distinguishes the three edit operations.
type Kind int

const (
	// Substitute replaces the unit at Pos with To
	Substitute Kind = iota
	// Insert places To before the unit at Pos
	Insert
	// Delete removes the unit at Pos
	Delete
)

func (k Kind) String() string {
	switch k {
	case Substitute:
		return "substitute"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Edit is one atomic correction. Pos indexes the corrupted (source)
// sequence; an insertion takes the index of the source unit it precedes,
// so an insertion at the very end has Pos == len(source).
type Edit struct {
	Pos  int
	Kind Kind
	From string
	To   string
}

// Set holds the edits of one (corrupted, corrected) pair, unique by
// position. Extraction overwrites earlier edits at a duplicate position.
type Set map[int]Edit

// Words splits a sequence into its whitespace-delimited tokens, the
// granularity used for spelling correction.
func Words(s string) []string {
	return strings.Fields(s)
}

// Chars splits a sequence into single-rune units, the granularity used for
// whitespace correction.
func Chars(s string) []string {
	runes := []rune(s)
	units := make([]string, len(runes))
	for i, r := range runes {
		units[i] = string(r)
	}
	return units
}

// Extract aligns src against dst with a minimum-edit-distance alignment
// (unit costs) and returns the edit set transforming src into dst.
//
// The backtrace resolves cost ties preferring match, then substitution,
// then deletion, then insertion. Different tie-breaks yield different but
// equally minimal edit sets; fixing one keeps extraction deterministic.
func Extract(src, dst []string) Set {
	n, m := len(src), len(dst)

	dist := make([][]int, n+1)
	for i := range dist {
		dist[i] = make([]int, m+1)
		dist[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dist[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if src[i-1] == dst[j-1] {
				dist[i][j] = dist[i-1][j-1]
				continue
			}
			best := dist[i-1][j-1] // substitution
			if d := dist[i-1][j]; d < best {
				best = d // deletion
			}
			if d := dist[i][j-1]; d < best {
				best = d // insertion
			}
			dist[i][j] = best + 1
		}
	}

	// Backtrace from the end, collecting operations in reverse order.
	type op struct {
		pos  int
		kind Kind
		from string
		to   string
	}
	var ops []op
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && src[i-1] == dst[j-1] && dist[i][j] == dist[i-1][j-1]:
			i--
			j--
		case i > 0 && j > 0 && dist[i][j] == dist[i-1][j-1]+1:
			ops = append(ops, op{pos: i - 1, kind: Substitute, from: src[i-1], to: dst[j-1]})
			i--
			j--
		case i > 0 && dist[i][j] == dist[i-1][j]+1:
			ops = append(ops, op{pos: i - 1, kind: Delete, from: src[i-1]})
			i--
		default:
			ops = append(ops, op{pos: i, kind: Insert, to: dst[j-1]})
			j--
		}
	}

	// Apply in forward order so that a later edit at a duplicate position
	// (several insertions before the same source unit) overwrites an
	// earlier one.
	set := make(Set, len(ops))
	for k := len(ops) - 1; k >= 0; k-- {
		o := ops[k]
		set[o.pos] = Edit{Pos: o.pos, Kind: o.kind, From: o.from, To: o.to}
	}
	return set
}

// Counts holds the classification outcome of one sequence triple.
type Counts struct {
	TP int
	FP int
	FN int
}

// Add accumulates other into c.
func (c *Counts) Add(other Counts) {
	c.TP += other.TP
	c.FP += other.FP
	c.FN += other.FN
}

// F1 returns precision, recall and F1 for the counts. Zero denominators
// yield 0 so that corpus aggregation stays total.
func (c Counts) F1() (precision, recall, f1 float64) {
	if c.TP+c.FP > 0 {
		precision = float64(c.TP) / float64(c.TP+c.FP)
	}
	if c.TP+c.FN > 0 {
		recall = float64(c.TP) / float64(c.TP+c.FN)
	}
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return precision, recall, f1
}

// Classify compares the predicted edit set against the reference edit set.
// A predicted edit is a true positive only if the reference contains an
// edit with the same position, kind and corrected value; changing the right
// position to the wrong value is a false positive and still leaves the
// unmatched reference edit as a false negative.
func Classify(predicted, reference Set) Counts {
	var c Counts
	for pos, p := range predicted {
		r, ok := reference[pos]
		if ok && r.Kind == p.Kind && r.To == p.To {
			c.TP++
		} else {
			c.FP++
		}
	}
	c.FN = len(reference) - c.TP
	return c
}

// ClassifyTriple extracts both edit sets for one triple at the given
// granularity and classifies them. split is Words for spelling correction
// and Chars for whitespace correction.
func ClassifyTriple(corrupted, predicted, groundtruth string, split func(string) []string) Counts {
	src := split(corrupted)
	predSet := Extract(src, split(predicted))
	refSet := Extract(src, split(groundtruth))
	return Classify(predSet, refSet)
}
