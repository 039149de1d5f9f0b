package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"appeals/internal/llm"
	"appeals/internal/port"
	"appeals/mocks"
)

func generated(model string) *port.GenerateOutput {
	return &port.GenerateOutput{Text: `{"denial_reason": "other"}`, ModelUsed: model}
}

func TestFallbackGenerator_FirstSucceeds(t *testing.T) {
	g1 := new(mocks.MockTextGenerator)
	g2 := new(mocks.MockTextGenerator)

	input := port.GenerateInput{Prompt: "extract", MaxTokens: 1024}
	g1.On("Generate", mock.Anything, input).Return(generated("claude"), nil)

	fg := llm.NewFallbackGenerator(
		[]port.TextGenerator{g1, g2},
		[]string{"claude", "openai"},
	)

	out, err := fg.Generate(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "claude", out.ModelUsed)
	g2.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestFallbackGenerator_FirstFails_SecondSucceeds(t *testing.T) {
	g1 := new(mocks.MockTextGenerator)
	g2 := new(mocks.MockTextGenerator)

	input := port.GenerateInput{Prompt: "extract", MaxTokens: 1024}
	g1.On("Generate", mock.Anything, input).Return(nil, errors.New("upstream 500"))
	g2.On("Generate", mock.Anything, input).Return(generated("gpt-4o"), nil)

	fg := llm.NewFallbackGenerator(
		[]port.TextGenerator{g1, g2},
		[]string{"claude", "openai"},
	)

	out, err := fg.Generate(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", out.ModelUsed)
}

func TestFallbackGenerator_RateLimitOpensCircuit(t *testing.T) {
	g1 := new(mocks.MockTextGenerator)
	g2 := new(mocks.MockTextGenerator)

	input := port.GenerateInput{Prompt: "extract", MaxTokens: 1024}
	g1.On("Generate", mock.Anything, input).Return(nil, llm.NewRateLimitError("claude", errors.New("429"), 60)).Once()
	g2.On("Generate", mock.Anything, input).Return(generated("gpt-4o"), nil).Twice()

	fg := llm.NewFallbackGenerator(
		[]port.TextGenerator{g1, g2},
		[]string{"claude", "openai"},
	)

	_, err := fg.Generate(context.Background(), input)
	require.NoError(t, err)

	// Second call skips the rate-limited provider entirely.
	_, err = fg.Generate(context.Background(), input)
	require.NoError(t, err)
	g1.AssertNumberOfCalls(t, "Generate", 1)
	g2.AssertNumberOfCalls(t, "Generate", 2)
}

func TestFallbackGenerator_AllRateLimited(t *testing.T) {
	g1 := new(mocks.MockTextGenerator)
	g2 := new(mocks.MockTextGenerator)

	input := port.GenerateInput{Prompt: "extract", MaxTokens: 1024}
	g1.On("Generate", mock.Anything, input).Return(nil, llm.NewRateLimitError("claude", errors.New("429"), 30))
	g2.On("Generate", mock.Anything, input).Return(nil, llm.NewRateLimitError("openai", errors.New("429"), 60))

	fg := llm.NewFallbackGenerator(
		[]port.TextGenerator{g1, g2},
		[]string{"claude", "openai"},
	)

	_, err := fg.Generate(context.Background(), input)

	var rlErr *llm.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "all", rlErr.Provider)
}

func TestFallbackGenerator_AllFailGeneric(t *testing.T) {
	g1 := new(mocks.MockTextGenerator)

	input := port.GenerateInput{Prompt: "extract", MaxTokens: 1024}
	g1.On("Generate", mock.Anything, input).Return(nil, errors.New("boom"))

	fg := llm.NewFallbackGenerator([]port.TextGenerator{g1}, []string{"claude"})

	_, err := fg.Generate(context.Background(), input)

	require.Error(t, err)
	var rlErr *llm.RateLimitError
	assert.False(t, errors.As(err, &rlErr))
	assert.Contains(t, err.Error(), "all generation providers failed")
}
