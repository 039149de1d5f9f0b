package port

import "context"

// GenerateInput carries a single text-generation request.
type GenerateInput struct {
	Prompt    string
	MaxTokens int
}

// GenerateOutput contains the raw text returned by a generation provider.
type GenerateOutput struct {
	Text      string
	ModelUsed string
}

// TextGenerator abstracts LLM text generation. Callers must tolerate
// best-effort structured output; providers only guarantee text.
type TextGenerator interface {
	Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error)
}
