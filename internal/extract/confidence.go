package extract

import (
	"math"

	"appeals/internal/domain"
)

// maxConfidenceWeight is the total point budget across all weighted fields.
const maxConfidenceWeight = 8.0

// ConfidenceScore computes a completeness score in [0, 1] for an extraction,
// rounded to two decimals. It is a proxy for how much human review the
// generated letter will need, not a correctness guarantee.
func ConfidenceScore(ex *domain.DenialExtraction) float64 {
	score := 0.0

	if ex.PayerName != nil {
		score += 1.0
	}
	if ex.DenialDate != nil {
		score += 1.0
	}
	if ex.DenialReason != domain.ReasonOther {
		score += 1.5
	}
	if ex.DenialReasonText != nil {
		score += 1.0
	}
	if len(ex.ProcedureCodes) > 0 {
		score += 1.0
	}
	if len(ex.DiagnosisCodes) > 0 {
		score += 1.0
	}
	if ex.ClaimNumber != nil {
		score += 0.5
	}
	if ex.AppealDeadline != nil {
		score += 1.0
	}

	return math.Round(score/maxConfidenceWeight*100) / 100
}
