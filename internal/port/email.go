package port

import (
	"context"

	"appeals/internal/domain"
)

// EmailSender delivers a generated appeal letter to a practice inbox.
type EmailSender interface {
	SendAppealLetter(ctx context.Context, toEmail string, record *domain.AppealRecord) error
}
