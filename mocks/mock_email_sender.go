package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"appeals/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendAppealLetter(ctx context.Context, toEmail string, record *domain.AppealRecord) error {
	args := m.Called(ctx, toEmail, record)
	return args.Error(0)
}
