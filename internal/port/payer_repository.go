package port

import (
	"context"

	"github.com/google/uuid"

	"appeals/internal/domain"
)

// PayerRepository provides lookup over the insurance payer directory.
type PayerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payer, error)
	GetByNameOrAlias(ctx context.Context, name string) (*domain.Payer, error)
	ListAll(ctx context.Context) ([]domain.Payer, error)
}
