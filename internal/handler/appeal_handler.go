package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"appeals/internal/domain"
	"appeals/internal/service"
)

const minDenialTextLen = 50

// AppealHandler handles appeal generation and management endpoints.
type AppealHandler struct {
	appealService service.AppealService
	maxFileSize   int64
}

// NewAppealHandler creates a new AppealHandler. maxFileSize is in bytes.
func NewAppealHandler(appealService service.AppealService, maxFileSize int64) *AppealHandler {
	return &AppealHandler{appealService: appealService, maxFileSize: maxFileSize}
}

// Upload handles POST /api/v1/appeals/upload. It accepts a denial letter
// document as multipart form data plus optional patient context fields.
func (h *AppealHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("denial_letter")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "denial_letter file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if _, ok := domain.AllowedContentTypes[contentType]; !ok {
		HandleError(c, domain.ErrUnsupportedFileType)
		return
	}
	if header.Size > h.maxFileSize {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "READ_FAILED", "could not read uploaded file")
		return
	}
	if int64(len(data)) > h.maxFileSize {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	appeal, err := h.appealService.ProcessDenial(c.Request.Context(), &service.ProcessDocumentInput{
		DocumentBytes: data,
		ContentType:   contentType,
		Patient:       patientContextFromForm(c),
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, appeal)
}

type textRequest struct {
	DenialText string                 `json:"denial_text" binding:"required"`
	Patient    *domain.PatientContext `json:"patient_context"`
}

// Text handles POST /api/v1/appeals/text for pre-extracted denial text.
func (h *AppealHandler) Text(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "denial_text is required")
		return
	}
	if len(strings.TrimSpace(req.DenialText)) < minDenialTextLen {
		HandleError(c, domain.ErrDenialTextTooShort)
		return
	}

	appeal, err := h.appealService.ProcessDenialFromText(c.Request.Context(), &service.ProcessTextInput{
		DenialText: req.DenialText,
		Patient:    req.Patient,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, appeal)
}

// GetByID handles GET /api/v1/appeals/:id
func (h *AppealHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid appeal ID format")
		return
	}

	record, err := h.appealService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, record)
}

// List handles GET /api/v1/appeals with offset/limit pagination.
func (h *AppealHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	records, total, err := h.appealService.ListRecent(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /api/v1/appeals/:id/status
func (h *AppealHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid appeal ID format")
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required")
		return
	}
	status, ok := domain.ValidAppealStatuses[strings.ToLower(strings.TrimSpace(req.Status))]
	if !ok {
		HandleError(c, domain.ErrInvalidStatus)
		return
	}

	record, err := h.appealService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, record)
}

type sendRequest struct {
	ToEmail string `json:"to_email" binding:"required,email"`
}

// Send handles POST /api/v1/appeals/:id/send
func (h *AppealHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid appeal ID format")
		return
	}

	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "to_email must be a valid email address")
		return
	}

	if err := h.appealService.SendAppeal(c.Request.Context(), id, req.ToEmail); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"sent": true})
}

// patientContextFromForm assembles optional patient context from multipart
// form fields. Returns nil when no field was supplied.
func patientContextFromForm(c *gin.Context) *domain.PatientContext {
	pc := &domain.PatientContext{
		PatientName:          c.PostForm("patient_name"),
		DateOfBirth:          optionalForm(c, "date_of_birth"),
		MemberID:             optionalForm(c, "member_id"),
		ProcedureCode:        c.PostForm("procedure_code"),
		ProcedureDescription: optionalForm(c, "procedure_description"),
		DiagnosisCodes:       splitForm(c, "diagnosis_codes"),
		TreatingPhysician:    optionalForm(c, "treating_physician"),
		ClinicalNotes:        optionalForm(c, "clinical_notes"),
		PriorTreatments:      splitForm(c, "prior_treatments"),
	}

	if pc.PatientName == "" && pc.DateOfBirth == nil && pc.MemberID == nil &&
		pc.ProcedureCode == "" && pc.ProcedureDescription == nil &&
		len(pc.DiagnosisCodes) == 0 && pc.TreatingPhysician == nil &&
		pc.ClinicalNotes == nil && len(pc.PriorTreatments) == 0 {
		return nil
	}
	return pc
}

func optionalForm(c *gin.Context, field string) *string {
	v := strings.TrimSpace(c.PostForm(field))
	if v == "" {
		return nil
	}
	return &v
}

func splitForm(c *gin.Context, field string) []string {
	raw := c.PostForm(field)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
