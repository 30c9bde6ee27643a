// Package textio loads the newline-delimited text files a benchmark is made
// of and resolves the lowercase policy applied to predictions.
package textio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tcbench/api"
)

// LoadLines reads a file into one string per line, trailing newline
// stripped. Windows line endings are tolerated.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return lines, nil
}

// LowercasePolicy decides per line whether a prediction is case-folded
// before scoring. It is either uniform or read from a companion file with
// one 0/1 flag per prediction line. The zero value lowercases nothing.
type LowercasePolicy struct {
	uniform  bool
	flagPath string
}

// LowercaseNone leaves all predictions untouched.
func LowercaseNone() LowercasePolicy {
	return LowercasePolicy{}
}

// LowercaseAll folds every prediction line.
func LowercaseAll() LowercasePolicy {
	return LowercasePolicy{uniform: true}
}

// LowercaseFromFile reads one 0/1 flag per prediction line from path.
func LowercaseFromFile(path string) LowercasePolicy {
	return LowercasePolicy{flagPath: path}
}

// Resolve produces the per-line flag sequence for a corpus of n lines.
// A flag file with a different line count or a non-integer flag is an
// error.
func (p LowercasePolicy) Resolve(n int) ([]bool, error) {
	flags := make([]bool, n)
	if p.flagPath == "" {
		for i := range flags {
			flags[i] = p.uniform
		}
		return flags, nil
	}

	lines, err := LoadLines(p.flagPath)
	if err != nil {
		return nil, err
	}
	if len(lines) != n {
		return nil, fmt.Errorf("%w: lowercase file %s has %d lines, expected %d",
			api.ErrLengthMismatch, p.flagPath, len(lines), n)
	}
	for i, line := range lines {
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("parse lowercase flag %q on line %d of %s: %w",
				line, i+1, p.flagPath, err)
		}
		flags[i] = v != 0
	}
	return flags, nil
}

// ApplyLowercase returns a copy of lines with the flagged entries folded.
// The input slice is never mutated.
func ApplyLowercase(lines []string, flags []bool) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if i < len(flags) && flags[i] {
			out[i] = strings.ToLower(line)
		} else {
			out[i] = line
		}
	}
	return out
}
