package textio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcbench/api"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLines(t *testing.T) {
	path := writeFile(t, "in.txt", "first\nsecond\r\nthird\n")
	lines, err := LoadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, lines)
}

func TestLoadLinesMissingFile(t *testing.T) {
	_, err := LoadLines(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLowercasePolicyUniform(t *testing.T) {
	flags, err := LowercaseAll().Resolve(3)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true}, flags)

	flags, err = LowercaseNone().Resolve(2)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, flags)
}

func TestLowercasePolicyFromFile(t *testing.T) {
	path := writeFile(t, "flags.txt", "1\n0\n1\n")
	flags, err := LowercaseFromFile(path).Resolve(3)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, flags)
}

func TestLowercasePolicyFileCountMismatch(t *testing.T) {
	path := writeFile(t, "flags.txt", "1\n0\n")
	_, err := LowercaseFromFile(path).Resolve(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrLengthMismatch))
}

func TestLowercasePolicyBadFlag(t *testing.T) {
	path := writeFile(t, "flags.txt", "1\nyes\n")
	_, err := LowercaseFromFile(path).Resolve(2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yes")
}

func TestApplyLowercase(t *testing.T) {
	in := []string{"MiXeD", "MiXeD"}
	out := ApplyLowercase(in, []bool{true, false})
	assert.Equal(t, []string{"mixed", "MiXeD"}, out)
	assert.Equal(t, "MiXeD", in[0], "input must not be mutated")
}
