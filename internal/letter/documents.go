package letter

import "appeals/internal/domain"

// baseDocuments are required for every appeal, in fixed order, ahead of any
// reason-specific items.
var baseDocuments = []string{
	"Copy of denial letter",
	"Patient insurance card (front and back)",
}

// genericDocuments backstop reasons with no specific list; the mapper never
// returns fewer than the base items plus these two.
var genericDocuments = []string{
	"Supporting clinical documentation",
	"Physician statement",
}

// RequiredDocuments maps a denial reason to the ordered list of supporting
// documents an appeal must include. Base documents come first, then the
// reason-specific items. Total and side-effect free.
func RequiredDocuments(reason domain.DenialReason) []string {
	var specific []string

	switch reason {
	case domain.ReasonMedicalNecessity:
		specific = []string{
			"Physician letter of medical necessity",
			"Relevant clinical notes and history",
			"Lab results and diagnostic imaging",
			"Peer-reviewed literature supporting treatment",
			"Treatment plan documentation",
		}
	case domain.ReasonStepTherapy:
		specific = []string{
			"Documentation of all prior treatments attempted",
			"Clinical notes showing treatment failures or adverse reactions",
			"Pharmacy records showing previous medications filled",
			"Documentation of contraindications (if applicable)",
		}
	case domain.ReasonNotCovered:
		specific = []string{
			"Summary of Benefits and Coverage (SBC)",
			"Evidence of Coverage (EOC) relevant sections",
			"Documentation supporting benefit category classification",
			"Any applicable state mandate documentation",
		}
	case domain.ReasonOutOfNetwork:
		specific = []string{
			"Documentation of in-network provider search",
			"Evidence of network inadequacy",
			"Continuity of care documentation",
			"Provider qualifications/credentials",
		}
	case domain.ReasonMissingInfo:
		specific = []string{
			"All previously submitted documentation",
			"Specifically requested missing documents",
			"Updated clinical notes",
			"Any additional supporting materials",
		}
	case domain.ReasonExperimental:
		specific = []string{
			"FDA approval documentation",
			"Published peer-reviewed clinical studies",
			"Clinical practice guidelines",
			"Professional society position statements",
			"Evidence of coverage by other major insurers",
		}
	case domain.ReasonQuantityLimit:
		specific = []string{
			"Physician justification for quantity",
			"Treatment protocol documentation",
			"Disease severity documentation",
			"FDA/manufacturer dosing guidelines",
		}
	case domain.ReasonPriorAuthReq:
		specific = []string{
			"Documentation of emergency/urgency (if applicable)",
			"Clinical notes from date of service",
			"Evidence of medical necessity",
			"Explanation for lack of prospective authorization",
		}
	default:
		specific = genericDocuments
	}

	docs := make([]string, 0, len(baseDocuments)+len(specific))
	docs = append(docs, baseDocuments...)
	docs = append(docs, specific...)
	return docs
}
