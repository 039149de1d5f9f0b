package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"appeals/internal/domain"
	"appeals/internal/port"
)

type appealRepo struct {
	db *sqlx.DB
}

// NewAppealRepo creates a new PostgreSQL-backed AppealRepository.
func NewAppealRepo(db *sqlx.DB) port.AppealRepository {
	return &appealRepo{db: db}
}

// appealRow maps the appeals table; list-valued fields live in JSONB columns.
type appealRow struct {
	ID               uuid.UUID           `db:"id"`
	PatientName      *string             `db:"patient_name"`
	MemberID         *string             `db:"member_id"`
	PayerName        *string             `db:"payer_name"`
	DenialReason     domain.DenialReason `db:"denial_reason"`
	DenialReasonText *string             `db:"denial_reason_text"`
	DenialDate       *time.Time          `db:"denial_date"`
	ClaimNumber      *string             `db:"claim_number"`
	AppealDeadline   *time.Time          `db:"appeal_deadline"`
	ProcedureCodes   []byte              `db:"procedure_codes"`
	DiagnosisCodes   []byte              `db:"diagnosis_codes"`
	AppealLetter     string              `db:"appeal_letter"`
	RequiredDocs     []byte              `db:"required_documents"`
	ConfidenceScore  float64             `db:"confidence_score"`
	DenialText       string              `db:"denial_text"`
	DocumentKey      *string             `db:"document_key"`
	Status           domain.AppealStatus `db:"status"`
	CreatedAt        time.Time           `db:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at"`
}

func toRow(rec *domain.AppealRecord) (*appealRow, error) {
	procCodes, err := json.Marshal(rec.ProcedureCodes)
	if err != nil {
		return nil, fmt.Errorf("marshaling procedure codes: %w", err)
	}
	diagCodes, err := json.Marshal(rec.DiagnosisCodes)
	if err != nil {
		return nil, fmt.Errorf("marshaling diagnosis codes: %w", err)
	}
	reqDocs, err := json.Marshal(rec.RequiredDocs)
	if err != nil {
		return nil, fmt.Errorf("marshaling required documents: %w", err)
	}
	return &appealRow{
		ID:               rec.ID,
		PatientName:      rec.PatientName,
		MemberID:         rec.MemberID,
		PayerName:        rec.PayerName,
		DenialReason:     rec.DenialReason,
		DenialReasonText: rec.DenialReasonText,
		DenialDate:       rec.DenialDate,
		ClaimNumber:      rec.ClaimNumber,
		AppealDeadline:   rec.AppealDeadline,
		ProcedureCodes:   procCodes,
		DiagnosisCodes:   diagCodes,
		AppealLetter:     rec.AppealLetter,
		RequiredDocs:     reqDocs,
		ConfidenceScore:  rec.ConfidenceScore,
		DenialText:       rec.DenialText,
		DocumentKey:      rec.DocumentKey,
		Status:           rec.Status,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}, nil
}

func (r *appealRow) toDomain() *domain.AppealRecord {
	rec := &domain.AppealRecord{
		ID:               r.ID,
		PatientName:      r.PatientName,
		MemberID:         r.MemberID,
		PayerName:        r.PayerName,
		DenialReason:     r.DenialReason,
		DenialReasonText: r.DenialReasonText,
		DenialDate:       r.DenialDate,
		ClaimNumber:      r.ClaimNumber,
		AppealDeadline:   r.AppealDeadline,
		ProcedureCodes:   []string{},
		DiagnosisCodes:   []string{},
		AppealLetter:     r.AppealLetter,
		RequiredDocs:     []string{},
		ConfidenceScore:  r.ConfidenceScore,
		DenialText:       r.DenialText,
		DocumentKey:      r.DocumentKey,
		Status:           r.Status,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	_ = json.Unmarshal(r.ProcedureCodes, &rec.ProcedureCodes)
	_ = json.Unmarshal(r.DiagnosisCodes, &rec.DiagnosisCodes)
	_ = json.Unmarshal(r.RequiredDocs, &rec.RequiredDocs)
	return rec
}

func (r *appealRepo) Create(ctx context.Context, rec *domain.AppealRecord) error {
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if rec.Status == "" {
		rec.Status = domain.AppealStatusGenerated
	}

	row, err := toRow(rec)
	if err != nil {
		return fmt.Errorf("appealRepo.Create: %w", err)
	}

	query := `INSERT INTO appeals (
		id, patient_name, member_id, payer_name,
		denial_reason, denial_reason_text, denial_date, claim_number, appeal_deadline,
		procedure_codes, diagnosis_codes,
		appeal_letter, required_documents, confidence_score,
		denial_text, document_key, status, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4,
		$5, $6, $7, $8, $9,
		$10, $11,
		$12, $13, $14,
		$15, $16, $17, $18, $19
	)`

	_, err = r.db.ExecContext(ctx, query,
		row.ID, row.PatientName, row.MemberID, row.PayerName,
		row.DenialReason, row.DenialReasonText, row.DenialDate, row.ClaimNumber, row.AppealDeadline,
		row.ProcedureCodes, row.DiagnosisCodes,
		row.AppealLetter, row.RequiredDocs, row.ConfidenceScore,
		row.DenialText, row.DocumentKey, row.Status, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("appealRepo.Create: %w", err)
	}
	return nil
}

func (r *appealRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AppealRecord, error) {
	var row appealRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM appeals WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAppealNotFound
		}
		return nil, fmt.Errorf("appealRepo.GetByID: %w", err)
	}
	return row.toDomain(), nil
}

func (r *appealRepo) ListRecent(ctx context.Context, offset, limit int) ([]domain.AppealRecord, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM appeals"); err != nil {
		return nil, 0, fmt.Errorf("appealRepo.ListRecent count: %w", err)
	}

	var rows []appealRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM appeals ORDER BY created_at DESC OFFSET $1 LIMIT $2", offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("appealRepo.ListRecent: %w", err)
	}

	records := make([]domain.AppealRecord, len(rows))
	for i := range rows {
		records[i] = *rows[i].toDomain()
	}
	return records, total, nil
}

func (r *appealRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppealStatus) (*domain.AppealRecord, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE appeals SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("appealRepo.UpdateStatus: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("appealRepo.UpdateStatus: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrAppealNotFound
	}
	return r.GetByID(ctx, id)
}
