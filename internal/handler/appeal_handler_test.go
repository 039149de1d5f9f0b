package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"appeals/internal/domain"
	"appeals/internal/handler"
	"appeals/internal/service"
	"appeals/mocks"
)

const maxTestFileSize = 10 * 1024 * 1024

func setupRouter(svc service.AppealService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewAppealHandler(svc, maxTestFileSize)

	r := gin.New()
	r.POST("/api/v1/appeals/upload", h.Upload)
	r.POST("/api/v1/appeals/text", h.Text)
	r.GET("/api/v1/appeals/:id", h.GetByID)
	r.GET("/api/v1/appeals", h.List)
	r.PATCH("/api/v1/appeals/:id/status", h.UpdateStatus)
	r.POST("/api/v1/appeals/:id/send", h.Send)
	return r
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestTextEndpoint_GeneratesAppeal(t *testing.T) {
	svc := new(mocks.MockAppealService)
	appeal := &domain.AppealLetter{
		ID:                  uuid.New(),
		DenialExtraction:    domain.NewDenialExtraction("denial text"),
		LetterContent:       "Dear Appeals Department,",
		RequiredAttachments: []string{"Copy of denial letter"},
		ConfidenceScore:     0.5,
	}
	svc.On("ProcessDenialFromText", mock.Anything, mock.AnythingOfType("*service.ProcessTextInput")).
		Return(appeal, nil)

	body, _ := json.Marshal(gin.H{
		"denial_text": strings.Repeat("Your claim has been denied. ", 5),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appeals/text", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestTextEndpoint_RejectsShortText(t *testing.T) {
	svc := new(mocks.MockAppealService)

	body, _ := json.Marshal(gin.H{"denial_text": "too short"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appeals/text", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DENIAL_TEXT_TOO_SHORT", resp.Error.Code)
	svc.AssertNotCalled(t, "ProcessDenialFromText", mock.Anything, mock.Anything)
}

func TestTextEndpoint_RejectsMissingBody(t *testing.T) {
	svc := new(mocks.MockAppealService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appeals/text", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadEndpoint_RejectsUnsupportedContentType(t *testing.T) {
	svc := new(mocks.MockAppealService)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="denial_letter"; filename="denial.txt"`)
	hdr.Set("Content-Type", "text/plain")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, _ = part.Write([]byte("plain text denial"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appeals/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", resp.Error.Code)
	svc.AssertNotCalled(t, "ProcessDenial", mock.Anything, mock.Anything)
}

func TestUploadEndpoint_RejectsMissingFile(t *testing.T) {
	svc := new(mocks.MockAppealService)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("patient_name", "Jordan Rivera"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appeals/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MISSING_FILE", resp.Error.Code)
}

func TestUploadEndpoint_PassesPatientContext(t *testing.T) {
	svc := new(mocks.MockAppealService)
	appeal := &domain.AppealLetter{
		ID:               uuid.New(),
		DenialExtraction: domain.NewDenialExtraction("denial text"),
		LetterContent:    "letter",
	}

	var captured *service.ProcessDocumentInput
	svc.On("ProcessDenial", mock.Anything, mock.AnythingOfType("*service.ProcessDocumentInput")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*service.ProcessDocumentInput)
		}).
		Return(appeal, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="denial_letter"; filename="denial.pdf"`)
	hdr.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, mw.WriteField("patient_name", "Jordan Rivera"))
	require.NoError(t, mw.WriteField("diagnosis_codes", "M17.11, M25.561"))
	require.NoError(t, mw.WriteField("prior_treatments", "methotrexate,sulfasalazine"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appeals/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, captured)
	require.NotNil(t, captured.Patient)
	assert.Equal(t, "Jordan Rivera", captured.Patient.PatientName)
	assert.Equal(t, []string{"M17.11", "M25.561"}, captured.Patient.DiagnosisCodes)
	assert.Equal(t, []string{"methotrexate", "sulfasalazine"}, captured.Patient.PriorTreatments)
	assert.Equal(t, "application/pdf", captured.ContentType)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := new(mocks.MockAppealService)
	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrAppealNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appeals/"+id.String(), nil)
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "APPEAL_NOT_FOUND", resp.Error.Code)
}

func TestGetByID_InvalidUUID(t *testing.T) {
	svc := new(mocks.MockAppealService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appeals/not-a-uuid", nil)
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_ClampsPagination(t *testing.T) {
	svc := new(mocks.MockAppealService)
	svc.On("ListRecent", mock.Anything, 0, 20).Return([]domain.AppealRecord{}, 0, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appeals?offset=-5&limit=5000", nil)
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertCalled(t, "ListRecent", mock.Anything, 0, 20)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := new(mocks.MockAppealService)
	id := uuid.New()

	body, _ := json.Marshal(gin.H{"status": "celebrated"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appeals/"+id.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_STATUS", resp.Error.Code)
	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_Valid(t *testing.T) {
	svc := new(mocks.MockAppealService)
	id := uuid.New()
	record := &domain.AppealRecord{ID: id, Status: domain.AppealStatusSubmitted}
	svc.On("UpdateStatus", mock.Anything, id, domain.AppealStatusSubmitted).Return(record, nil)

	body, _ := json.Marshal(gin.H{"status": "Submitted"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appeals/"+id.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSend_RequiresValidEmail(t *testing.T) {
	svc := new(mocks.MockAppealService)
	id := uuid.New()

	body, _ := json.Marshal(gin.H{"to_email": "not-an-email"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appeals/"+id.String()+"/send", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "SendAppeal", mock.Anything, mock.Anything, mock.Anything)
}
