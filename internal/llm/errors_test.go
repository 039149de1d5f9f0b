package llm_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"appeals/internal/llm"
)

func TestNewRateLimitError_DefaultsRetryAfter(t *testing.T) {
	err := llm.NewRateLimitError("claude", errors.New("429"), 0)
	assert.Equal(t, 60*time.Second, err.RetryAfter)

	err = llm.NewRateLimitError("claude", errors.New("429"), 30)
	assert.Equal(t, 30*time.Second, err.RetryAfter)
}

func TestRateLimitError_Unwrap(t *testing.T) {
	inner := errors.New("429 too many requests")
	err := llm.NewRateLimitError("openai", inner, 10)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "openai")
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, llm.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, llm.ParseRetryAfterHeader("Wed, 21 Oct 2015 07:28:00 GMT"))
	assert.Equal(t, 45, llm.ParseRetryAfterHeader("45"))
}
