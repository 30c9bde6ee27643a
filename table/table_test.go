package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	out := Generate(
		[][]string{
			{"Spelling error correction", "", ""},
			{"bea322", "Micro F1", "MNED"},
		},
		[][]string{
			{"model-a", "79.20", "0.0810"},
			{"baseline", "0.00", "1.0000"},
		},
		[]Alignment{AlignLeft, AlignRight, AlignRight},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5, "two header rows, separator, two data rows")

	// Every line has the same width.
	for _, line := range lines[1:] {
		assert.Equal(t, len(lines[0]), len(line), "ragged table row: %q", line)
	}

	assert.Contains(t, lines[0], "Spelling error correction")
	assert.Contains(t, lines[3], "model-a")
	// Right-aligned numeric cells keep their padding on the left.
	assert.Contains(t, lines[4], " 0.00 |")
	// Separator row between headers and data is dashes only.
	assert.Equal(t, "", strings.Trim(lines[2], "|- "))
}

func TestGenerateEmpty(t *testing.T) {
	assert.Equal(t, "", Generate(nil, nil, nil))
}
