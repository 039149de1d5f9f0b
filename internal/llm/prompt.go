package llm

import (
	"strings"

	"appeals/internal/domain"
)

// BuildExtractionPrompt returns the prompt that asks a generation provider
// to pull structured denial facts out of letter text. The response contract
// matches what the extraction normalizer expects: a single raw JSON object,
// though the normalizer tolerates any wrapping the provider adds anyway.
func BuildExtractionPrompt(denialText string) string {
	return `You are a healthcare prior authorization specialist. Analyze the following denial letter and extract key information.

Denial Letter Text:
` + denialText + `

Return ONLY a valid JSON object with no markdown formatting, no code fences, no explanation. Use exactly this schema:
{
  "payer_name": "",
  "denial_date": "",
  "denial_reason": "",
  "denial_reason_text": "",
  "procedure_codes": [],
  "diagnosis_codes": [],
  "member_id": "",
  "claim_number": "",
  "appeal_deadline": ""
}

Rules:
- "denial_reason" must be one of: medical_necessity, not_covered, out_of_network, missing_information, experimental_treatment, step_therapy_required, quantity_limit, prior_auth_required, other.
- Normalize all dates to YYYY-MM-DD format.
- "procedure_codes" holds CPT codes; "diagnosis_codes" holds ICD-10 codes.
- Use an empty string for text fields not present in the document and empty arrays for code lists not present.`
}

// BuildEnhancementPrompt asks a provider to polish a rendered draft. The
// structural contract stays with the draft: the output must remain a
// complete letter addressing the same denial reason.
func BuildEnhancementPrompt(ex *domain.DenialExtraction, pc *domain.PatientContext, draft string) string {
	var b strings.Builder
	b.WriteString(`You are a healthcare prior authorization appeals specialist. Improve the prose of the appeal letter draft below.

Denial Information:
- Payer: ` + stringOr(ex.PayerName, "Unknown") + `
- Denial Reason: ` + string(ex.DenialReason) + `
- Denial Explanation: ` + stringOr(ex.DenialReasonText, "Not specified") + `
- Procedure: ` + joinOr(ex.ProcedureCodes, "Not specified") + `
- Diagnoses: ` + joinOr(ex.DiagnosisCodes, "Not specified") + "\n")

	if pc != nil {
		b.WriteString("\nPatient Context:\n")
		b.WriteString("- Patient: " + pc.PatientName + "\n")
		b.WriteString("- Procedure: " + stringOr(pc.ProcedureDescription, pc.ProcedureCode) + "\n")
		b.WriteString("- Prior Treatments: " + joinOr(pc.PriorTreatments, "N/A") + "\n")
		b.WriteString("- Clinical Notes: " + stringOr(pc.ClinicalNotes, "N/A") + "\n")
	}

	b.WriteString(`
Draft:
` + draft + `

Rewrite the draft as a professional appeal letter that:
1. Clearly states this is an appeal of the denial
2. References the specific denial reason
3. Provides medical necessity justification
4. Cites relevant clinical guidelines when applicable
5. Requests expedited review if appropriate
6. Lists required supporting documentation

Keep every bracketed placeholder (e.g. [CLINICAL NOTES]) exactly as written so missing information stays visible to the reviewer. The tone should be professional but assertive. Return only the letter text.`)

	return b.String()
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
