package ocr_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"appeals/internal/domain"
	"appeals/internal/ocr"
	"appeals/mocks"
)

func TestRetryingExtractor_SucceedsFirstAttempt(t *testing.T) {
	inner := new(mocks.MockTextExtractor)
	doc := []byte("pdf bytes")
	inner.On("ExtractText", mock.Anything, doc).Return("Dear patient, your claim was denied.", nil)

	r := ocr.NewRetryingExtractor(inner, 3, time.Millisecond)

	text, err := r.ExtractText(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, "Dear patient, your claim was denied.", text)
	inner.AssertNumberOfCalls(t, "ExtractText", 1)
}

func TestRetryingExtractor_RecoversOnSecondAttempt(t *testing.T) {
	inner := new(mocks.MockTextExtractor)
	doc := []byte("pdf bytes")
	inner.On("ExtractText", mock.Anything, doc).Return("", errors.New("throttled")).Once()
	inner.On("ExtractText", mock.Anything, doc).Return("extracted text", nil).Once()

	r := ocr.NewRetryingExtractor(inner, 3, time.Millisecond)

	text, err := r.ExtractText(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, "extracted text", text)
	inner.AssertNumberOfCalls(t, "ExtractText", 2)
}

func TestRetryingExtractor_ExhaustedAttemptsIsTerminal(t *testing.T) {
	inner := new(mocks.MockTextExtractor)
	doc := []byte("pdf bytes")
	inner.On("ExtractText", mock.Anything, doc).Return("", errors.New("service unavailable"))

	r := ocr.NewRetryingExtractor(inner, 3, time.Millisecond)

	_, err := r.ExtractText(context.Background(), doc)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOCRFailed)
	inner.AssertNumberOfCalls(t, "ExtractText", 3)
}

func TestRetryingExtractor_EmptyTextFailsWithoutRetry(t *testing.T) {
	inner := new(mocks.MockTextExtractor)
	doc := []byte("blank page")
	inner.On("ExtractText", mock.Anything, doc).Return("   \n\t ", nil)

	r := ocr.NewRetryingExtractor(inner, 3, time.Millisecond)

	_, err := r.ExtractText(context.Background(), doc)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOCRFailed)
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
	inner.AssertNumberOfCalls(t, "ExtractText", 1)
}

func TestRetryingExtractor_ContextCancelledDuringBackoff(t *testing.T) {
	inner := new(mocks.MockTextExtractor)
	doc := []byte("pdf bytes")
	inner.On("ExtractText", mock.Anything, doc).Return("", errors.New("throttled"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := ocr.NewRetryingExtractor(inner, 3, 50*time.Millisecond)

	_, err := r.ExtractText(ctx, doc)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOCRFailed)
	assert.ErrorIs(t, err, context.Canceled)
	inner.AssertNumberOfCalls(t, "ExtractText", 1)
}
