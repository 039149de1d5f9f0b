package textract

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"appeals/internal/config"
	"appeals/internal/port"
)

type textractExtractor struct {
	client *textract.Client
}

// NewExtractor creates an AWS Textract-backed TextExtractor.
func NewExtractor(cfg *config.OCRConfig) (port.TextExtractor, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for Textract: %w", err)
	}
	return &textractExtractor{client: textract.NewFromConfig(awsCfg)}, nil
}

// ExtractText runs synchronous text detection and joins LINE blocks in
// document order.
func (t *textractExtractor) ExtractText(ctx context.Context, documentBytes []byte) (string, error) {
	out, err := t.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{Bytes: documentBytes},
	})
	if err != nil {
		return "", fmt.Errorf("textract DetectDocumentText: %w", err)
	}

	var lines []string
	for _, block := range out.Blocks {
		if block.BlockType == types.BlockTypeLine && block.Text != nil {
			lines = append(lines, *block.Text)
		}
	}

	return strings.Join(lines, "\n"), nil
}
