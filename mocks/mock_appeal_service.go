package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"appeals/internal/domain"
	"appeals/internal/service"
)

// MockAppealService is a mock implementation of service.AppealService.
type MockAppealService struct {
	mock.Mock
}

func (m *MockAppealService) ProcessDenial(ctx context.Context, input *service.ProcessDocumentInput) (*domain.AppealLetter, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppealLetter), args.Error(1)
}

func (m *MockAppealService) ProcessDenialFromText(ctx context.Context, input *service.ProcessTextInput) (*domain.AppealLetter, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppealLetter), args.Error(1)
}

func (m *MockAppealService) GetByID(ctx context.Context, id uuid.UUID) (*domain.AppealRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppealRecord), args.Error(1)
}

func (m *MockAppealService) ListRecent(ctx context.Context, offset, limit int) ([]domain.AppealRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.AppealRecord), args.Int(1), args.Error(2)
}

func (m *MockAppealService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppealStatus) (*domain.AppealRecord, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppealRecord), args.Error(1)
}

func (m *MockAppealService) SendAppeal(ctx context.Context, id uuid.UUID, toEmail string) error {
	args := m.Called(ctx, id, toEmail)
	return args.Error(0)
}
