package letter

import (
	"strings"
	"time"

	"appeals/internal/domain"
)

// Render selects the template for the extraction's denial reason and
// substitutes every placeholder. Missing optional fields render as explicit
// bracketed markers so the draft visibly flags incompleteness for a human
// reviewer; an empty list renders a marker too, never a blank.
//
// Render is deterministic: the same (extraction, patient context, now)
// always yields the identical draft.
func Render(ex *domain.DenialExtraction, pc *domain.PatientContext, now time.Time) string {
	tmpl := SelectTemplate(ex.DenialReason)

	docs := RequiredDocuments(ex.DenialReason)
	items := make([]string, len(docs))
	for i, d := range docs {
		items[i] = "- " + d
	}

	r := strings.NewReplacer(
		"{current_date}", now.Format("January 2, 2006"),
		"{patient_name}", patientName(pc),
		"{member_id}", memberID(ex, pc),
		"{claim_number}", text(ex.ClaimNumber, "[CLAIM NUMBER]"),
		"{service_date}", "[DATE OF SERVICE]",
		"{procedure_code}", procedureCode(ex, pc),
		"{procedure_description}", procedureDescription(pc),
		"{diagnosis_codes}", diagnosisCodes(ex, pc),
		"{payer_name}", text(ex.PayerName, "[PAYER NAME]"),
		"{denial_date}", date(ex.DenialDate, "[DENIAL DATE]"),
		"{denial_reason_text}", text(ex.DenialReasonText, "[DENIAL REASON]"),
		"{clinical_notes}", clinicalNotes(pc),
		"{prior_treatments}", priorTreatments(pc),
		"{treating_physician}", treatingPhysician(pc),
		"{required_documents}", strings.Join(items, "\n"),
	)

	return r.Replace(tmpl)
}

func text(v *string, marker string) string {
	if v == nil || *v == "" {
		return marker
	}
	return *v
}

func date(v *time.Time, marker string) string {
	if v == nil {
		return marker
	}
	return v.Format("January 2, 2006")
}

func patientName(pc *domain.PatientContext) string {
	if pc == nil || pc.PatientName == "" {
		return "[PATIENT NAME]"
	}
	return pc.PatientName
}

// memberID prefers the extracted value; the caller-supplied context fills in
// when extraction came up empty.
func memberID(ex *domain.DenialExtraction, pc *domain.PatientContext) string {
	if ex.MemberID != nil && *ex.MemberID != "" {
		return *ex.MemberID
	}
	if pc != nil && pc.MemberID != nil && *pc.MemberID != "" {
		return *pc.MemberID
	}
	return "[MEMBER ID]"
}

func procedureCode(ex *domain.DenialExtraction, pc *domain.PatientContext) string {
	if len(ex.ProcedureCodes) > 0 {
		return strings.Join(ex.ProcedureCodes, ", ")
	}
	if pc != nil && pc.ProcedureCode != "" {
		return pc.ProcedureCode
	}
	return "[PROCEDURE CODE]"
}

func procedureDescription(pc *domain.PatientContext) string {
	if pc != nil && pc.ProcedureDescription != nil && *pc.ProcedureDescription != "" {
		return *pc.ProcedureDescription
	}
	if pc != nil && pc.ProcedureCode != "" {
		return "the requested procedure (" + pc.ProcedureCode + ")"
	}
	return "[PROCEDURE DESCRIPTION]"
}

func diagnosisCodes(ex *domain.DenialExtraction, pc *domain.PatientContext) string {
	if len(ex.DiagnosisCodes) > 0 {
		return strings.Join(ex.DiagnosisCodes, ", ")
	}
	if pc != nil && len(pc.DiagnosisCodes) > 0 {
		return strings.Join(pc.DiagnosisCodes, ", ")
	}
	return "[DIAGNOSIS CODES]"
}

func clinicalNotes(pc *domain.PatientContext) string {
	if pc != nil && pc.ClinicalNotes != nil && *pc.ClinicalNotes != "" {
		return *pc.ClinicalNotes
	}
	return "[CLINICAL NOTES]"
}

// priorTreatments renders as line items, one treatment per line.
func priorTreatments(pc *domain.PatientContext) string {
	if pc == nil || len(pc.PriorTreatments) == 0 {
		return "[PRIOR TREATMENTS]"
	}
	items := make([]string, len(pc.PriorTreatments))
	for i, t := range pc.PriorTreatments {
		items[i] = "- " + t
	}
	return strings.Join(items, "\n")
}

func treatingPhysician(pc *domain.PatientContext) string {
	if pc != nil && pc.TreatingPhysician != nil && *pc.TreatingPhysician != "" {
		return *pc.TreatingPhysician
	}
	return "[TREATING PHYSICIAN]"
}
