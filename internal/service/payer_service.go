package service

import (
	"context"

	"appeals/internal/domain"
	"appeals/internal/port"
)

// PayerService defines the payer directory contract.
type PayerService interface {
	List(ctx context.Context) ([]domain.Payer, error)
	GetRequirements(ctx context.Context, name string) (*domain.Payer, error)
}

type payerService struct {
	payerRepo port.PayerRepository
}

// NewPayerService creates a new PayerService implementation.
func NewPayerService(payerRepo port.PayerRepository) PayerService {
	return &payerService{payerRepo: payerRepo}
}

func (s *payerService) List(ctx context.Context) ([]domain.Payer, error) {
	return s.payerRepo.ListAll(ctx)
}

// GetRequirements finds a payer by name or alias (case-insensitive substring
// match, matching how payer names appear in denial letters).
func (s *payerService) GetRequirements(ctx context.Context, name string) (*domain.Payer, error) {
	return s.payerRepo.GetByNameOrAlias(ctx, name)
}
