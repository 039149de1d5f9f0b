package extract_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appeals/internal/domain"
	"appeals/internal/extract"
)

const sourceText = "Your claim has been denied because the requested service is not medically necessary."

func TestNormalize_FullPayload(t *testing.T) {
	response := `{
		"payer_name": "Aetna",
		"denial_date": "2025-06-15",
		"denial_reason": "medical_necessity",
		"denial_reason_text": "not medically necessary",
		"procedure_codes": ["27447"],
		"diagnosis_codes": ["M17.11", "M25.561"],
		"member_id": "W123456789",
		"claim_number": "CLM-2025-0042",
		"appeal_deadline": "2025-12-12"
	}`

	result := extract.Normalize(sourceText, response)

	require.False(t, result.Degraded)
	assert.Equal(t, extract.DegradeNone, result.Reason)

	ex := result.Extraction
	require.NotNil(t, ex.PayerName)
	assert.Equal(t, "Aetna", *ex.PayerName)
	assert.Equal(t, domain.ReasonMedicalNecessity, ex.DenialReason)
	require.NotNil(t, ex.DenialDate)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), *ex.DenialDate)
	assert.Equal(t, []string{"27447"}, ex.ProcedureCodes)
	assert.Equal(t, []string{"M17.11", "M25.561"}, ex.DiagnosisCodes)
	require.NotNil(t, ex.ClaimNumber)
	assert.Equal(t, "CLM-2025-0042", *ex.ClaimNumber)
	assert.Equal(t, sourceText, ex.RawText)
}

func TestNormalize_JSONInsideCodeFence(t *testing.T) {
	response := "Here is the extraction:\n```json\n{\"denial_reason\": \"step_therapy_required\", \"payer_name\": \"Cigna\"}\n```\nLet me know if you need anything else."

	result := extract.Normalize(sourceText, response)

	require.False(t, result.Degraded)
	assert.Equal(t, domain.ReasonStepTherapy, result.Extraction.DenialReason)
	require.NotNil(t, result.Extraction.PayerName)
	assert.Equal(t, "Cigna", *result.Extraction.PayerName)
}

func TestNormalize_BracesInsideStringValues(t *testing.T) {
	response := `{"denial_reason": "not_covered", "denial_reason_text": "excluded per {plan} terms"}`

	result := extract.Normalize(sourceText, response)

	require.False(t, result.Degraded)
	assert.Equal(t, domain.ReasonNotCovered, result.Extraction.DenialReason)
	require.NotNil(t, result.Extraction.DenialReasonText)
	assert.Equal(t, "excluded per {plan} terms", *result.Extraction.DenialReasonText)
}

func TestNormalize_EmptyResponse(t *testing.T) {
	result := extract.Normalize(sourceText, "")

	require.True(t, result.Degraded)
	assert.Equal(t, extract.DegradeNoPayload, result.Reason)
	assert.Equal(t, domain.ReasonOther, result.Extraction.DenialReason)
	assert.Equal(t, sourceText, result.Extraction.RawText)
}

func TestNormalize_ProseOnly(t *testing.T) {
	result := extract.Normalize(sourceText, "I could not find any structured data in the letter.")

	require.True(t, result.Degraded)
	assert.Equal(t, extract.DegradeNoPayload, result.Reason)
	assert.Equal(t, sourceText, result.Extraction.RawText)
}

func TestNormalize_TruncatedJSON(t *testing.T) {
	// Balanced inner object but the outer payload is cut off mid-field.
	result := extract.Normalize(sourceText, `{"payer_name": "Humana", "denial_reason": "quantity`)

	require.True(t, result.Degraded)
	assert.Equal(t, extract.DegradeNoPayload, result.Reason)
	assert.Equal(t, domain.ReasonOther, result.Extraction.DenialReason)
}

func TestNormalize_BadDateTreatedAsAbsent(t *testing.T) {
	response := `{"denial_date": "June 15th, 2025", "appeal_deadline": "2025-13-45", "denial_reason": "other"}`

	result := extract.Normalize(sourceText, response)

	require.False(t, result.Degraded)
	assert.Nil(t, result.Extraction.DenialDate)
	assert.Nil(t, result.Extraction.AppealDeadline)
}

func TestNormalize_WrongTypesToleratedFieldwise(t *testing.T) {
	response := `{
		"payer_name": 42,
		"denial_reason": "out_of_network",
		"procedure_codes": "27447",
		"diagnosis_codes": null,
		"member_id": ""
	}`

	result := extract.Normalize(sourceText, response)

	require.False(t, result.Degraded)
	ex := result.Extraction
	assert.Nil(t, ex.PayerName)
	assert.Nil(t, ex.MemberID)
	assert.Equal(t, domain.ReasonOutOfNetwork, ex.DenialReason)
	assert.NotNil(t, ex.ProcedureCodes)
	assert.Empty(t, ex.ProcedureCodes)
	assert.NotNil(t, ex.DiagnosisCodes)
	assert.Empty(t, ex.DiagnosisCodes)
}

func TestNormalize_UnknownReasonMapsToOther(t *testing.T) {
	result := extract.Normalize(sourceText, `{"denial_reason": "no_idea_really"}`)

	require.False(t, result.Degraded)
	assert.Equal(t, domain.ReasonOther, result.Extraction.DenialReason)
}
