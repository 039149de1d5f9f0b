package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"appeals/internal/domain"
	"appeals/internal/llm"
)

func TestBuildExtractionPrompt_EmbedsDenialTextAndSchema(t *testing.T) {
	prompt := llm.BuildExtractionPrompt("Your claim CLM-42 was denied.")

	assert.Contains(t, prompt, "Your claim CLM-42 was denied.")
	for _, key := range []string{
		"payer_name", "denial_date", "denial_reason", "denial_reason_text",
		"procedure_codes", "diagnosis_codes", "member_id", "claim_number", "appeal_deadline",
	} {
		assert.Contains(t, prompt, key)
	}
	for _, reason := range domain.DenialReasons {
		assert.Contains(t, prompt, string(reason))
	}
}

func TestBuildEnhancementPrompt_CarriesDraft(t *testing.T) {
	ex := domain.NewDenialExtraction("raw")
	draft := "Dear Appeals Department,\n[PATIENT NAME] requests review."

	prompt := llm.BuildEnhancementPrompt(ex, nil, draft)

	assert.Contains(t, prompt, draft)
	assert.Contains(t, prompt, "placeholder")
}
