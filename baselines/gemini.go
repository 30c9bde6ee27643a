package baselines

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"tcbench"
)

const (
	sedsSystemPrompt = "You are a helpful assistant that detects " +
		"whether a text contains a spelling error. You respond with ERROR " +
		"if there is a spelling error, and with NO_ERROR if there is none. " +
		"You do not add any additional information to your response."
	secSystemPrompt = "You are a helpful assistant that fixes " +
		"spelling errors in text. You only ever respond with the corrected text " +
		"and no additional information. If there are no errors, you respond with the original text."
)

// GeminiOptions configures the Gemini chat-completion baseline.
type GeminiOptions struct {
	// Client is a configured genai.Client (auth handled by the caller)
	Client *genai.Client
	// Model is the model name, e.g. "gemini-2.5-flash"
	Model string
	// Task selects the system prompt; only seds and sec are supported
	Task tcbench.Task
}

// Gemini returns a baseline that sends every input sequence through a chat
// completion with a per-task system prompt.
func Gemini(opts GeminiOptions) (Baseline, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("gemini baseline: client is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("gemini baseline: model name is required")
	}

	var prompt string
	switch opts.Task {
	case tcbench.TaskSeds:
		prompt = sedsSystemPrompt
	case tcbench.TaskSec:
		prompt = secSystemPrompt
	default:
		return nil, fmt.Errorf("gemini baseline: unsupported task %s", opts.Task)
	}

	return &geminiBaseline{opts: opts, prompt: prompt}, nil
}

type geminiBaseline struct {
	opts   GeminiOptions
	prompt string
}

func (b *geminiBaseline) Name() string { return "gemini" }

func (b *geminiBaseline) Run(ctx context.Context, sequences []string) ([]string, error) {
	out := make([]string, len(sequences))
	for i, sequence := range sequences {
		prediction, err := b.complete(ctx, sequence)
		if err != nil {
			return nil, fmt.Errorf("sequence %d: %w", i+1, err)
		}
		prediction = cleanText(prediction)
		if b.opts.Task == tcbench.TaskSeds {
			prediction, err = parseDetectionLabel(prediction)
			if err != nil {
				return nil, fmt.Errorf("sequence %d: %w", i+1, err)
			}
		}
		out[i] = prediction
	}
	return out, nil
}

// parseDetectionLabel maps the model's ERROR / NO_ERROR answer onto the 0/1
// label format the detection benchmarks use.
func parseDetectionLabel(response string) (string, error) {
	switch {
	case strings.Contains(response, "NO_ERROR"):
		return "0", nil
	case strings.Contains(response, "ERROR"):
		return "1", nil
	default:
		return "", fmt.Errorf("unexpected detection response %q", response)
	}
}

func (b *geminiBaseline) complete(ctx context.Context, sequence string) (string, error) {
	content := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: sequence},
		},
	}

	resp, err := b.opts.Client.Models.GenerateContent(
		ctx,
		b.opts.Model,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{
					{Text: b.prompt},
				},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no parts in response")
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
