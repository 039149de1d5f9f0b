package port

import "context"

// TextExtractor abstracts OCR: document bytes in, plain text out.
type TextExtractor interface {
	ExtractText(ctx context.Context, documentBytes []byte) (string, error)
}
