package letter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"appeals/internal/domain"
	"appeals/internal/letter"
)

func TestRequiredDocuments_BaseDocumentsFirstForEveryReason(t *testing.T) {
	for _, reason := range domain.DenialReasons {
		docs := letter.RequiredDocuments(reason)
		assert.GreaterOrEqual(t, len(docs), 4, "reason %s", reason)
		assert.Equal(t, "Copy of denial letter", docs[0], "reason %s", reason)
		assert.Equal(t, "Patient insurance card (front and back)", docs[1], "reason %s", reason)
	}
}

func TestRequiredDocuments_StepTherapySpecifics(t *testing.T) {
	docs := letter.RequiredDocuments(domain.ReasonStepTherapy)

	assert.Contains(t, docs, "Documentation of all prior treatments attempted")
	assert.Contains(t, docs, "Pharmacy records showing previous medications filled")
}

func TestRequiredDocuments_UnknownReasonGetsGenericList(t *testing.T) {
	docs := letter.RequiredDocuments(domain.ReasonOther)

	assert.Len(t, docs, 4)
	assert.Contains(t, docs, "Supporting clinical documentation")
	assert.Contains(t, docs, "Physician statement")
}

func TestRequiredDocuments_Deterministic(t *testing.T) {
	for _, reason := range domain.DenialReasons {
		assert.Equal(t, letter.RequiredDocuments(reason), letter.RequiredDocuments(reason))
	}
}
