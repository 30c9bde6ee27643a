// Package tokenize preprocesses benchmark text by whitespace-joining the
// tokens of an NLP pipeline, so that model outputs and references agree on
// token boundaries. The pipeline is Google Cloud Natural Language syntax
// analysis.
package tokenize

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	language "cloud.google.com/go/language/apiv1"
	languagepb "cloud.google.com/go/language/apiv1/languagepb"
)

// Tokenizer splits text into tokens using a Cloud Natural Language client.
type Tokenizer struct {
	client *language.Client
}

// New creates a Tokenizer from a preconfigured *language.Client (auth
// handled by the caller).
func New(client *language.Client) *Tokenizer {
	return &Tokenizer{client: client}
}

// Line tokenizes a single line and returns its tokens joined by single
// spaces.
func (t *Tokenizer) Line(ctx context.Context, line string) (string, error) {
	if t.client == nil {
		return "", fmt.Errorf("language client is required")
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}

	req := &languagepb.AnalyzeSyntaxRequest{
		Document: &languagepb.Document{
			Type: languagepb.Document_PLAIN_TEXT,
			Source: &languagepb.Document_Content{
				Content: line,
			},
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := t.client.AnalyzeSyntax(ctx, req)
	if err != nil {
		return "", fmt.Errorf("analyze syntax failed: %w", err)
	}

	tokens := make([]string, 0, len(resp.Tokens))
	for _, tok := range resp.Tokens {
		tokens = append(tokens, tok.GetText().GetContent())
	}
	return strings.Join(tokens, " "), nil
}

// File tokenizes in line by line and writes one tokenized line per input
// line to out.
func (t *Tokenizer) File(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	w := bufio.NewWriter(out)
	for scanner.Scan() {
		tokenized, err := t.Line(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, tokenized); err != nil {
			return fmt.Errorf("write tokenized line: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return w.Flush()
}
