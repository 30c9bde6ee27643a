package tcbench

import (
	"fmt"
	"path/filepath"
	"strings"

	"tcbench/api"
)

// Task is one of the four benchmark families. The benchmark directory
// layout encodes it as the parent directory name, e.g. sec/bea322.
type Task int

const (
	// TaskSeds is sequence-level spelling error detection
	TaskSeds Task = iota
	// TaskSedw is word-level spelling error detection
	TaskSedw
	// TaskSec is spelling error correction
	TaskSec
	// TaskWsc is whitespace correction
	TaskWsc
)

// ParseTask maps a benchmark type string onto its Task.
func ParseTask(s string) (Task, error) {
	switch s {
	case "seds":
		return TaskSeds, nil
	case "sedw":
		return TaskSedw, nil
	case "sec":
		return TaskSec, nil
	case "wsc":
		return TaskWsc, nil
	default:
		return 0, fmt.Errorf("%w: %q", api.ErrUnknownTask, s)
	}
}

// TaskFromBenchmarkPath derives the task from a benchmark directory whose
// parent directory names the benchmark type, e.g. ".../sec/bea322".
func TaskFromBenchmarkPath(dir string) (Task, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return 0, fmt.Errorf("resolve benchmark path: %w", err)
	}
	parent := filepath.Base(filepath.Dir(abs))
	if parent == "." || parent == string(filepath.Separator) {
		return 0, fmt.Errorf("%w: benchmark directory %q has no parent naming the task", api.ErrUnknownTask, dir)
	}
	return ParseTask(parent)
}

func (t Task) String() string {
	switch t {
	case TaskSeds:
		return "seds"
	case TaskSedw:
		return "sedw"
	case TaskSec:
		return "sec"
	case TaskWsc:
		return "wsc"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-readable task name used as the top table
// header.
func (t Task) DisplayName() string {
	switch t {
	case TaskSeds:
		return "Sequence-level spelling error detection"
	case TaskSedw:
		return "Word-level spelling error detection"
	case TaskSec:
		return "Spelling error correction"
	case TaskWsc:
		return "Whitespace correction"
	default:
		return "Unknown task"
	}
}

// MetricNames returns the fixed metric set of the task.
func (t Task) MetricNames() []string {
	switch t {
	case TaskSeds:
		return []string{"bin_f1", "seq_acc"}
	case TaskSedw:
		return []string{"bin_f1", "word_acc"}
	case TaskSec:
		return []string{"sec_f1", "mned"}
	case TaskWsc:
		return []string{"wsc_f1", "seq_acc"}
	default:
		return nil
	}
}

// Lowercasing predictions is only meaningful for spelling correction
// benchmarks whose references are lowercased (bea322/bea4660).
func (t Task) SupportsLowercase() bool {
	return t == TaskSec
}

// TaskNames returns the benchmark type strings, for CLI help output.
func TaskNames() string {
	return strings.Join([]string{
		TaskSeds.String(), TaskSedw.String(), TaskSec.String(), TaskWsc.String(),
	}, ", ")
}
