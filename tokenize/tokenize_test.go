package tokenize

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tcbench/internal/testutils"
)

func TestLineRequiresClient(t *testing.T) {
	tok := New(nil)
	if _, err := tok.Line(context.Background(), "some text"); err == nil {
		t.Error("Line() with nil client did not fail")
	}
}

func TestLineEmptyInput(t *testing.T) {
	tok := New(nil)
	// Blank lines short-circuit before the API call.
	out, err := tok.Line(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Line() error: %v", err)
	}
	if out != "" {
		t.Errorf("Line() = %q, want empty", out)
	}
}

// TestTokenizer_Integration runs the tokenizer against the real Cloud
// Natural Language API, with responses cached by hypert.
func TestTokenizer_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if _, err := os.Stat(filepath.Join("testdata", "language")); err != nil && !testutils.ShouldUpdate() {
		t.Skip("no recorded responses; run with UPDATE_TESTS=true to record")
	}

	ctx := context.Background()
	client := testutils.NewLanguageClient(t, "language")
	tok := New(client)

	var out strings.Builder
	in := strings.NewReader("Don't split contractions wrongly.\n")
	if err := tok.File(ctx, in, &out); err != nil {
		t.Fatalf("File() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("File() wrote %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], " ") {
		t.Errorf("File() output %q has no token boundaries", lines[0])
	}
}
