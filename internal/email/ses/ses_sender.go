package ses

import (
	"context"
	"fmt"
	"html"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"appeals/internal/domain"
	"appeals/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendAppealLetter(ctx context.Context, toEmail string, record *domain.AppealRecord) error {
	subject := buildSubject(record)
	htmlBody := buildAppealHTML(record)
	textBody := buildAppealText(record)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildSubject(record *domain.AppealRecord) string {
	if record.ClaimNumber != nil && *record.ClaimNumber != "" {
		return fmt.Sprintf("Appeal letter for claim %s", *record.ClaimNumber)
	}
	return fmt.Sprintf("Appeal letter %s", record.ID)
}

func buildAppealText(record *domain.AppealRecord) string {
	var b strings.Builder
	b.WriteString(record.AppealLetter)
	b.WriteString("\n\n---\nRequired attachments:\n")
	for _, doc := range record.RequiredDocs {
		fmt.Fprintf(&b, "- %s\n", doc)
	}
	fmt.Fprintf(&b, "\nConfidence score: %.2f\n", record.ConfidenceScore)
	return b.String()
}

func buildAppealHTML(record *domain.AppealRecord) string {
	var docs strings.Builder
	for _, doc := range record.RequiredDocs {
		fmt.Fprintf(&docs, "<li>%s</li>", html.EscapeString(doc))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 700px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Generated appeal letter</h2>
  <pre style="white-space: pre-wrap; font-family: Georgia, serif; background: #f9f9f9; padding: 16px; border-radius: 6px;">%s</pre>
  <h3 style="color: #333;">Required attachments</h3>
  <ul>%s</ul>
  <p style="color: #999; font-size: 12px;">Confidence score: %.2f. Review all bracketed placeholders before submitting.</p>
</body>
</html>`, html.EscapeString(record.AppealLetter), docs.String(), record.ConfidenceScore)
}
