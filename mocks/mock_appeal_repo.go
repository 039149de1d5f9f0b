package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"appeals/internal/domain"
)

// MockAppealRepo is a mock implementation of port.AppealRepository.
type MockAppealRepo struct {
	mock.Mock
}

func (m *MockAppealRepo) Create(ctx context.Context, rec *domain.AppealRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockAppealRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AppealRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppealRecord), args.Error(1)
}

func (m *MockAppealRepo) ListRecent(ctx context.Context, offset, limit int) ([]domain.AppealRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AppealRecord), args.Int(1), args.Error(2)
}

func (m *MockAppealRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppealStatus) (*domain.AppealRecord, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppealRecord), args.Error(1)
}
