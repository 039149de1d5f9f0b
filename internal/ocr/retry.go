package ocr

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"appeals/internal/domain"
	"appeals/internal/port"
)

const (
	defaultMaxAttempts = 3
	defaultBaseBackoff = 500 * time.Millisecond
)

// RetryingExtractor wraps a TextExtractor with bounded retries and
// exponential backoff. After the attempt budget is exhausted, or when the
// provider returns no usable text, it surfaces a terminal domain.ErrOCRFailed.
// It implements port.TextExtractor.
type RetryingExtractor struct {
	inner       port.TextExtractor
	maxAttempts int
	baseBackoff time.Duration
}

// NewRetryingExtractor creates a RetryingExtractor. Zero values fall back to
// 3 attempts with a 500ms initial backoff.
func NewRetryingExtractor(inner port.TextExtractor, maxAttempts int, baseBackoff time.Duration) *RetryingExtractor {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if baseBackoff <= 0 {
		baseBackoff = defaultBaseBackoff
	}
	return &RetryingExtractor{
		inner:       inner,
		maxAttempts: maxAttempts,
		baseBackoff: baseBackoff,
	}
}

func (r *RetryingExtractor) ExtractText(ctx context.Context, documentBytes []byte) (string, error) {
	var lastErr error
	backoff := r.baseBackoff

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		text, err := r.inner.ExtractText(ctx, documentBytes)
		if err == nil {
			if strings.TrimSpace(text) == "" {
				return "", fmt.Errorf("%w: %w", domain.ErrOCRFailed, domain.ErrEmptyDocument)
			}
			return text, nil
		}
		lastErr = err
		log.Printf("ocr.RetryingExtractor: attempt %d/%d failed: %v", attempt, r.maxAttempts, err)

		if attempt == r.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %w", domain.ErrOCRFailed, ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return "", fmt.Errorf("%w after %d attempts: %w", domain.ErrOCRFailed, r.maxAttempts, lastErr)
}
