package letter_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"appeals/internal/domain"
	"appeals/internal/letter"
)

var renderNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func strp(s string) *string { return &s }

func TestRender_EmptyExtractionUsesBracketedMarkers(t *testing.T) {
	ex := domain.NewDenialExtraction("raw")

	out := letter.Render(ex, nil, renderNow)

	assert.Contains(t, out, "[PATIENT NAME]")
	assert.Contains(t, out, "[MEMBER ID]")
	assert.Contains(t, out, "[PAYER NAME]")
	assert.Contains(t, out, "[DENIAL DATE]")
	assert.Contains(t, out, "July 1, 2025")
	assert.NotContains(t, out, "{current_date}")
	assert.NotContains(t, out, "{payer_name}")
}

func TestRender_NoPlaceholderTokensSurvive(t *testing.T) {
	for _, reason := range domain.DenialReasons {
		ex := domain.NewDenialExtraction("raw")
		ex.DenialReason = reason

		out := letter.Render(ex, nil, renderNow)

		assert.NotContains(t, out, "{", "reason %s leaked a template token", reason)
	}
}

func TestRender_ExtractedFieldsSubstituted(t *testing.T) {
	ex := domain.NewDenialExtraction("raw")
	ex.DenialReason = domain.ReasonMedicalNecessity
	ex.PayerName = strp("Aetna")
	ex.DenialReasonText = strp("lack of demonstrated medical necessity")
	ex.ClaimNumber = strp("CLM-2025-0042")
	ex.ProcedureCodes = []string{"27447"}
	ex.DiagnosisCodes = []string{"M17.11", "M25.561"}
	denialDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	ex.DenialDate = &denialDate

	out := letter.Render(ex, nil, renderNow)

	assert.Contains(t, out, "Aetna")
	assert.Contains(t, out, "CLM-2025-0042")
	assert.Contains(t, out, "27447")
	assert.Contains(t, out, "M17.11, M25.561")
	assert.Contains(t, out, "June 15, 2025")
	assert.NotContains(t, out, "[PAYER NAME]")
	assert.NotContains(t, out, "[CLAIM NUMBER]")
}

func TestRender_PatientContextFillsGaps(t *testing.T) {
	ex := domain.NewDenialExtraction("raw")
	ex.DenialReason = domain.ReasonStepTherapy

	pc := &domain.PatientContext{
		PatientName:       "Jordan Rivera",
		MemberID:          strp("W123456789"),
		ProcedureCode:     "J0178",
		TreatingPhysician: strp("Dr. Chen"),
		PriorTreatments:   []string{"methotrexate", "sulfasalazine"},
	}

	out := letter.Render(ex, pc, renderNow)

	assert.Contains(t, out, "Jordan Rivera")
	assert.Contains(t, out, "W123456789")
	assert.Contains(t, out, "Dr. Chen")
	assert.Contains(t, out, "- methotrexate\n- sulfasalazine")
	assert.NotContains(t, out, "[PATIENT NAME]")
	assert.NotContains(t, out, "[PRIOR TREATMENTS]")
}

func TestRender_DenialReasonTextQuotedForEveryReason(t *testing.T) {
	const explanation = "the requested service does not meet plan criteria 7.3.1"

	for _, reason := range domain.DenialReasons {
		ex := domain.NewDenialExtraction("raw")
		ex.DenialReason = reason
		ex.DenialReasonText = strp(explanation)

		out := letter.Render(ex, nil, renderNow)

		assert.Contains(t, out, explanation, "reason %s dropped the denial explanation", reason)
	}
}

func TestRender_ExtractionPreferredOverContext(t *testing.T) {
	ex := domain.NewDenialExtraction("raw")
	ex.MemberID = strp("FROM-LETTER")

	pc := &domain.PatientContext{MemberID: strp("FROM-CALLER")}

	out := letter.Render(ex, pc, renderNow)

	assert.Contains(t, out, "FROM-LETTER")
	assert.NotContains(t, out, "FROM-CALLER")
}

func TestRender_RequiredDocumentsListedAsLineItems(t *testing.T) {
	ex := domain.NewDenialExtraction("raw")
	ex.DenialReason = domain.ReasonExperimental

	out := letter.Render(ex, nil, renderNow)

	for _, doc := range letter.RequiredDocuments(domain.ReasonExperimental) {
		assert.Contains(t, out, "- "+doc)
	}
}

func TestRender_Deterministic(t *testing.T) {
	ex := domain.NewDenialExtraction("raw")
	ex.DenialReason = domain.ReasonQuantityLimit
	ex.PayerName = strp("Humana")

	first := letter.Render(ex, nil, renderNow)
	second := letter.Render(ex, nil, renderNow)

	assert.Equal(t, first, second)
}

func TestSelectTemplate_DistinctPerReason(t *testing.T) {
	seen := map[string]domain.DenialReason{}
	for _, reason := range domain.DenialReasons {
		tmpl := letter.SelectTemplate(reason)
		assert.NotEmpty(t, tmpl)
		if prev, dup := seen[tmpl]; dup && reason != domain.ReasonOther {
			t.Fatalf("reasons %s and %s share a template", prev, reason)
		}
		seen[tmpl] = reason
	}
	assert.True(t, strings.Contains(letter.SelectTemplate(domain.ReasonStepTherapy), "step therapy") ||
		strings.Contains(letter.SelectTemplate(domain.ReasonStepTherapy), "Step Therapy"))
}
