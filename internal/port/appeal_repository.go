package port

import (
	"context"

	"github.com/google/uuid"

	"appeals/internal/domain"
)

// AppealRepository persists generated appeal records.
type AppealRepository interface {
	Create(ctx context.Context, record *domain.AppealRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AppealRecord, error)
	ListRecent(ctx context.Context, offset, limit int) ([]domain.AppealRecord, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppealStatus) (*domain.AppealRecord, error)
}
