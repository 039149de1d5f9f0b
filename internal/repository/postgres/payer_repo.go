package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"appeals/internal/domain"
	"appeals/internal/port"
)

type payerRepo struct {
	db *sqlx.DB
}

// NewPayerRepo creates a new PostgreSQL-backed PayerRepository.
func NewPayerRepo(db *sqlx.DB) port.PayerRepository {
	return &payerRepo{db: db}
}

type payerRow struct {
	ID                       uuid.UUID       `db:"id"`
	Name                     string          `db:"name"`
	Aliases                  []byte          `db:"aliases"`
	AppealsAddress           *string         `db:"appeals_address"`
	AppealsPhone             *string         `db:"appeals_phone"`
	AppealsFax               *string         `db:"appeals_fax"`
	AppealsPortalURL         *string         `db:"appeals_portal_url"`
	AppealDeadlineDays       int             `db:"appeal_deadline_days"`
	ExpeditedReviewAvailable bool            `db:"expedited_review_available"`
	MedicalNecessityReqs     json.RawMessage `db:"medical_necessity_reqs"`
	StepTherapyReqs          json.RawMessage `db:"step_therapy_reqs"`
	DocumentationReqs        json.RawMessage `db:"documentation_reqs"`
	CreatedAt                time.Time       `db:"created_at"`
	UpdatedAt                time.Time       `db:"updated_at"`
}

func (r *payerRow) toDomain() *domain.Payer {
	p := &domain.Payer{
		ID:                       r.ID,
		Name:                     r.Name,
		Aliases:                  []string{},
		AppealsAddress:           r.AppealsAddress,
		AppealsPhone:             r.AppealsPhone,
		AppealsFax:               r.AppealsFax,
		AppealsPortalURL:         r.AppealsPortalURL,
		AppealDeadlineDays:       r.AppealDeadlineDays,
		ExpeditedReviewAvailable: r.ExpeditedReviewAvailable,
		MedicalNecessityReqs:     r.MedicalNecessityReqs,
		StepTherapyReqs:          r.StepTherapyReqs,
		DocumentationReqs:        r.DocumentationReqs,
		CreatedAt:                r.CreatedAt,
		UpdatedAt:                r.UpdatedAt,
	}
	_ = json.Unmarshal(r.Aliases, &p.Aliases)
	return p
}

func (r *payerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payer, error) {
	var row payerRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM payers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPayerNotFound
		}
		return nil, fmt.Errorf("payerRepo.GetByID: %w", err)
	}
	return row.toDomain(), nil
}

// GetByNameOrAlias resolves a payer from the name that appears in a denial
// letter. It tries a case-insensitive substring match on the canonical name
// first, then falls back to scanning aliases. Alias lists are small so the
// scan stays in Go rather than in a jsonb_array_elements query.
func (r *payerRepo) GetByNameOrAlias(ctx context.Context, name string) (*domain.Payer, error) {
	needle := strings.TrimSpace(name)
	if needle == "" {
		return nil, domain.ErrPayerNotFound
	}

	var row payerRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM payers WHERE name ILIKE '%' || $1 || '%' ORDER BY name LIMIT 1", needle)
	if err == nil {
		return row.toDomain(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payerRepo.GetByNameOrAlias: %w", err)
	}

	payers, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	lowered := strings.ToLower(needle)
	for i := range payers {
		for _, alias := range payers[i].Aliases {
			a := strings.ToLower(alias)
			if strings.Contains(lowered, a) || strings.Contains(a, lowered) {
				return &payers[i], nil
			}
		}
	}
	return nil, domain.ErrPayerNotFound
}

func (r *payerRepo) ListAll(ctx context.Context) ([]domain.Payer, error) {
	var rows []payerRow
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM payers ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("payerRepo.ListAll: %w", err)
	}
	payers := make([]domain.Payer, len(rows))
	for i := range rows {
		payers[i] = *rows[i].toDomain()
	}
	return payers, nil
}
