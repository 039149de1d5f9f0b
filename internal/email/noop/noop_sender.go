package noop

import (
	"context"
	"log"

	"appeals/internal/domain"
	"appeals/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendAppealLetter(_ context.Context, toEmail string, record *domain.AppealRecord) error {
	log.Printf("[NOOP EMAIL] Appeal %s for %s (%d chars, %d attachments)",
		record.ID, toEmail, len(record.AppealLetter), len(record.RequiredDocs))
	return nil
}
