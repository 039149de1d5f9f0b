package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"appeals/internal/domain"
)

// MockPayerService is a mock implementation of service.PayerService.
type MockPayerService struct {
	mock.Mock
}

func (m *MockPayerService) List(ctx context.Context) ([]domain.Payer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payer), args.Error(1)
}

func (m *MockPayerService) GetRequirements(ctx context.Context, name string) (*domain.Payer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payer), args.Error(1)
}
