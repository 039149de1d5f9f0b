package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"appeals/internal/config"
	"appeals/internal/domain"
	"appeals/internal/extract"
	"appeals/internal/letter"
	"appeals/internal/llm"
	"appeals/internal/port"
)

const (
	extractionMaxTokens  = 1024
	enhancementMaxTokens = 4096
)

// ProcessDocumentInput is the DTO for generating an appeal from an uploaded
// denial document.
type ProcessDocumentInput struct {
	DocumentBytes []byte
	ContentType   string
	Patient       *domain.PatientContext
}

// ProcessTextInput is the DTO for generating an appeal from pre-extracted
// denial text.
type ProcessTextInput struct {
	DenialText string
	Patient    *domain.PatientContext
}

// AppealService defines the appeal generation contract.
type AppealService interface {
	ProcessDenial(ctx context.Context, input *ProcessDocumentInput) (*domain.AppealLetter, error)
	ProcessDenialFromText(ctx context.Context, input *ProcessTextInput) (*domain.AppealLetter, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AppealRecord, error)
	ListRecent(ctx context.Context, offset, limit int) ([]domain.AppealRecord, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppealStatus) (*domain.AppealRecord, error)
	SendAppeal(ctx context.Context, id uuid.UUID, toEmail string) error
}

type appealService struct {
	ocr        port.TextExtractor
	generator  port.TextGenerator
	appealRepo port.AppealRepository
	storage    port.ObjectStorage // nil disables document archiving
	email      port.EmailSender
	s3cfg      *config.S3Config
	enhance    bool
}

// NewAppealService creates a new AppealService implementation.
func NewAppealService(
	ocrExtractor port.TextExtractor,
	generator port.TextGenerator,
	appealRepo port.AppealRepository,
	storage port.ObjectStorage,
	email port.EmailSender,
	s3cfg *config.S3Config,
	enhance bool,
) AppealService {
	return &appealService{
		ocr:        ocrExtractor,
		generator:  generator,
		appealRepo: appealRepo,
		storage:    storage,
		email:      email,
		s3cfg:      s3cfg,
		enhance:    enhance,
	}
}

// ProcessDenial runs the full pipeline from document bytes. OCR failure is
// the one stage that aborts the request; without usable text there is
// nothing to extract from.
func (s *appealService) ProcessDenial(ctx context.Context, input *ProcessDocumentInput) (*domain.AppealLetter, error) {
	id := uuid.New()

	denialText, err := s.ocr.ExtractText(ctx, input.DocumentBytes)
	if err != nil {
		return nil, err
	}
	log.Printf("appealService: OCR complete for appeal %s (%d chars)", id, len(denialText))

	docKey := s.archiveDocument(ctx, id, input)

	return s.runPipeline(ctx, id, denialText, input.Patient, docKey)
}

// ProcessDenialFromText runs the pipeline from pre-extracted text, skipping
// the OCR stage.
func (s *appealService) ProcessDenialFromText(ctx context.Context, input *ProcessTextInput) (*domain.AppealLetter, error) {
	return s.runPipeline(ctx, uuid.New(), input.DenialText, input.Patient, nil)
}

// runPipeline is the common continuation: extraction, rendering, optional
// enhancement, requirement mapping, scoring, assembly, persistence. Every
// anomaly past this point degrades output quality instead of aborting.
func (s *appealService) runPipeline(ctx context.Context, id uuid.UUID, denialText string, pc *domain.PatientContext, docKey *string) (*domain.AppealLetter, error) {
	response := ""
	genOut, err := s.generator.Generate(ctx, port.GenerateInput{
		Prompt:    llm.BuildExtractionPrompt(denialText),
		MaxTokens: extractionMaxTokens,
	})
	if err != nil {
		log.Printf("appealService: extraction call failed for appeal %s, degrading: %v", id, err)
	} else {
		response = genOut.Text
	}

	result := extract.Normalize(denialText, response)
	if result.Degraded {
		log.Printf("appealService: degraded extraction for appeal %s (%s)", id, result.Reason)
	}
	ex := result.Extraction

	now := time.Now().UTC()
	draft := letter.Render(ex, pc, now)
	content := s.enhanceDraft(ctx, id, ex, pc, draft)

	appeal := &domain.AppealLetter{
		ID:                  id,
		DenialExtraction:    ex,
		LetterContent:       content,
		RequiredAttachments: letter.RequiredDocuments(ex.DenialReason),
		GeneratedAt:         now,
		ConfidenceScore:     extract.ConfidenceScore(ex),
	}

	if err := s.appealRepo.Create(ctx, toRecord(appeal, pc, docKey)); err != nil {
		return nil, fmt.Errorf("saving appeal record: %w", err)
	}

	log.Printf("appealService: appeal %s generated (reason=%s, confidence=%.2f)",
		id, ex.DenialReason, appeal.ConfidenceScore)
	return appeal, nil
}

// enhanceDraft runs the optional stylistic pass. Any failure falls back to
// the rendered draft, which is itself a complete letter.
func (s *appealService) enhanceDraft(ctx context.Context, id uuid.UUID, ex *domain.DenialExtraction, pc *domain.PatientContext, draft string) string {
	if !s.enhance {
		return draft
	}
	out, err := s.generator.Generate(ctx, port.GenerateInput{
		Prompt:    llm.BuildEnhancementPrompt(ex, pc, draft),
		MaxTokens: enhancementMaxTokens,
	})
	if err != nil {
		log.Printf("appealService: enhancement failed for appeal %s, using draft: %v", id, err)
		return draft
	}
	if strings.TrimSpace(out.Text) == "" {
		log.Printf("appealService: enhancement returned empty text for appeal %s, using draft", id)
		return draft
	}
	return out.Text
}

// archiveDocument stores the uploaded denial document for later retrieval.
// Archiving is best-effort; a storage failure never blocks the pipeline.
func (s *appealService) archiveDocument(ctx context.Context, id uuid.UUID, input *ProcessDocumentInput) *string {
	if s.storage == nil || s.s3cfg == nil || s.s3cfg.Bucket == "" {
		return nil
	}

	ext := "bin"
	if ft, ok := domain.AllowedContentTypes[input.ContentType]; ok {
		ext = string(ft)
	}
	key := fmt.Sprintf("denials/%s.%s", id, ext)

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(input.DocumentBytes),
		ContentType: input.ContentType,
		Size:        int64(len(input.DocumentBytes)),
	})
	if err != nil {
		log.Printf("appealService: archiving denial document for appeal %s failed: %v", id, err)
		return nil
	}
	return &key
}

func (s *appealService) GetByID(ctx context.Context, id uuid.UUID) (*domain.AppealRecord, error) {
	return s.appealRepo.GetByID(ctx, id)
}

func (s *appealService) ListRecent(ctx context.Context, offset, limit int) ([]domain.AppealRecord, int, error) {
	return s.appealRepo.ListRecent(ctx, offset, limit)
}

func (s *appealService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppealStatus) (*domain.AppealRecord, error) {
	return s.appealRepo.UpdateStatus(ctx, id, status)
}

// SendAppeal emails a previously generated appeal letter to a practice inbox.
func (s *appealService) SendAppeal(ctx context.Context, id uuid.UUID, toEmail string) error {
	record, err := s.appealRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.email.SendAppealLetter(ctx, toEmail, record); err != nil {
		return fmt.Errorf("sending appeal %s: %w", id, err)
	}
	return nil
}

// toRecord flattens a generated appeal into its persisted form.
func toRecord(appeal *domain.AppealLetter, pc *domain.PatientContext, docKey *string) *domain.AppealRecord {
	ex := appeal.DenialExtraction

	var patientName *string
	if pc != nil && pc.PatientName != "" {
		patientName = &pc.PatientName
	}
	memberID := ex.MemberID
	if memberID == nil && pc != nil {
		memberID = pc.MemberID
	}

	return &domain.AppealRecord{
		ID:               appeal.ID,
		PatientName:      patientName,
		MemberID:         memberID,
		PayerName:        ex.PayerName,
		DenialReason:     ex.DenialReason,
		DenialReasonText: ex.DenialReasonText,
		DenialDate:       ex.DenialDate,
		ClaimNumber:      ex.ClaimNumber,
		AppealDeadline:   ex.AppealDeadline,
		ProcedureCodes:   ex.ProcedureCodes,
		DiagnosisCodes:   ex.DiagnosisCodes,
		AppealLetter:     appeal.LetterContent,
		RequiredDocs:     appeal.RequiredAttachments,
		ConfidenceScore:  appeal.ConfidenceScore,
		DenialText:       ex.RawText,
		DocumentKey:      docKey,
		Status:           domain.AppealStatusGenerated,
	}
}
