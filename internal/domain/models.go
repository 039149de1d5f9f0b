package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DenialExtraction holds the structured facts pulled from a denial letter.
// Absent or unparsable fields are nil so consumers can rely on full field
// presence; DenialReason is always a valid taxonomy member. Constructed once
// per pipeline run and never mutated afterwards.
type DenialExtraction struct {
	PayerName        *string      `json:"payer_name"`
	DenialDate       *time.Time   `json:"denial_date"`
	DenialReason     DenialReason `json:"denial_reason"`
	DenialReasonText *string      `json:"denial_reason_text"`
	ProcedureCodes   []string     `json:"procedure_codes"`
	DiagnosisCodes   []string     `json:"diagnosis_codes"`
	MemberID         *string      `json:"member_id"`
	ClaimNumber      *string      `json:"claim_number"`
	AppealDeadline   *time.Time   `json:"appeal_deadline"`
	RawText          string       `json:"raw_text"`
}

// NewDenialExtraction returns an extraction with every structured field at
// its default and only the raw source text populated.
func NewDenialExtraction(rawText string) *DenialExtraction {
	return &DenialExtraction{
		DenialReason:   ReasonOther,
		ProcedureCodes: []string{},
		DiagnosisCodes: []string{},
		RawText:        rawText,
	}
}

// PatientContext is a caller-supplied supplement for appeal generation.
// It is never inferred by the pipeline.
type PatientContext struct {
	PatientName          string   `json:"patient_name"`
	DateOfBirth          *string  `json:"date_of_birth"`
	MemberID             *string  `json:"member_id"`
	ProcedureCode        string   `json:"procedure_code"`
	ProcedureDescription *string  `json:"procedure_description"`
	DiagnosisCodes       []string `json:"diagnosis_codes"`
	TreatingPhysician    *string  `json:"treating_physician"`
	ClinicalNotes        *string  `json:"clinical_notes"`
	PriorTreatments      []string `json:"prior_treatments"`
}

// AppealLetter is the pipeline output: the generated letter plus the
// extraction it was derived from. Created exactly once per invocation.
type AppealLetter struct {
	ID                  uuid.UUID         `json:"id"`
	DenialExtraction    *DenialExtraction `json:"denial_extraction"`
	LetterContent       string            `json:"letter_content"`
	RequiredAttachments []string          `json:"required_attachments"`
	GeneratedAt         time.Time         `json:"generated_at"`
	ConfidenceScore     float64           `json:"confidence_score"`
}

// AppealRecord is the persisted form of a generated appeal.
type AppealRecord struct {
	ID               uuid.UUID    `db:"id" json:"id"`
	PatientName      *string      `db:"patient_name" json:"patient_name"`
	MemberID         *string      `db:"member_id" json:"member_id"`
	PayerName        *string      `db:"payer_name" json:"payer_name"`
	DenialReason     DenialReason `db:"denial_reason" json:"denial_reason"`
	DenialReasonText *string      `db:"denial_reason_text" json:"denial_reason_text"`
	DenialDate       *time.Time   `db:"denial_date" json:"denial_date"`
	ClaimNumber      *string      `db:"claim_number" json:"claim_number"`
	AppealDeadline   *time.Time   `db:"appeal_deadline" json:"appeal_deadline"`
	ProcedureCodes   []string     `db:"-" json:"procedure_codes"`
	DiagnosisCodes   []string     `db:"-" json:"diagnosis_codes"`
	AppealLetter     string       `db:"appeal_letter" json:"appeal_letter"`
	RequiredDocs     []string     `db:"-" json:"required_documents"`
	ConfidenceScore  float64      `db:"confidence_score" json:"confidence_score"`
	DenialText       string       `db:"denial_text" json:"denial_text"`
	DocumentKey      *string      `db:"document_key" json:"document_key"`
	Status           AppealStatus `db:"status" json:"status"`
	CreatedAt        time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at" json:"updated_at"`
}

// Payer holds an insurer's appeal contact information and requirements.
type Payer struct {
	ID                       uuid.UUID       `db:"id" json:"id"`
	Name                     string          `db:"name" json:"name"`
	Aliases                  []string        `db:"-" json:"aliases"`
	AppealsAddress           *string         `db:"appeals_address" json:"appeals_address"`
	AppealsPhone             *string         `db:"appeals_phone" json:"appeals_phone"`
	AppealsFax               *string         `db:"appeals_fax" json:"appeals_fax"`
	AppealsPortalURL         *string         `db:"appeals_portal_url" json:"appeals_portal_url"`
	AppealDeadlineDays       int             `db:"appeal_deadline_days" json:"appeal_deadline_days"`
	ExpeditedReviewAvailable bool            `db:"expedited_review_available" json:"expedited_review_available"`
	MedicalNecessityReqs     json.RawMessage `db:"medical_necessity_reqs" json:"medical_necessity_requirements"`
	StepTherapyReqs          json.RawMessage `db:"step_therapy_reqs" json:"step_therapy_requirements"`
	DocumentationReqs        json.RawMessage `db:"documentation_reqs" json:"documentation_requirements"`
	CreatedAt                time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time       `db:"updated_at" json:"updated_at"`
}
