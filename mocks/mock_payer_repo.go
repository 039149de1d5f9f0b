package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"appeals/internal/domain"
)

// MockPayerRepo is a mock implementation of port.PayerRepository.
type MockPayerRepo struct {
	mock.Mock
}

func (m *MockPayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payer), args.Error(1)
}

func (m *MockPayerRepo) GetByNameOrAlias(ctx context.Context, name string) (*domain.Payer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payer), args.Error(1)
}

func (m *MockPayerRepo) ListAll(ctx context.Context) ([]domain.Payer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payer), args.Error(1)
}
