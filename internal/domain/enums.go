package domain

import "strings"

// DenialReason categorizes why a payer denied a prior authorization or claim.
type DenialReason string

const (
	ReasonMedicalNecessity DenialReason = "medical_necessity"
	ReasonNotCovered       DenialReason = "not_covered"
	ReasonOutOfNetwork     DenialReason = "out_of_network"
	ReasonMissingInfo      DenialReason = "missing_information"
	ReasonExperimental     DenialReason = "experimental_treatment"
	ReasonStepTherapy      DenialReason = "step_therapy_required"
	ReasonQuantityLimit    DenialReason = "quantity_limit"
	ReasonPriorAuthReq     DenialReason = "prior_auth_required"
	ReasonOther            DenialReason = "other"
)

// DenialReasons lists every category in a fixed order.
var DenialReasons = []DenialReason{
	ReasonMedicalNecessity,
	ReasonNotCovered,
	ReasonOutOfNetwork,
	ReasonMissingInfo,
	ReasonExperimental,
	ReasonStepTherapy,
	ReasonQuantityLimit,
	ReasonPriorAuthReq,
	ReasonOther,
}

// ParseDenialReason maps an arbitrary token to a DenialReason. Unrecognized
// tokens map to ReasonOther; this never fails.
func ParseDenialReason(token string) DenialReason {
	switch DenialReason(strings.ToLower(strings.TrimSpace(token))) {
	case ReasonMedicalNecessity:
		return ReasonMedicalNecessity
	case ReasonNotCovered:
		return ReasonNotCovered
	case ReasonOutOfNetwork:
		return ReasonOutOfNetwork
	case ReasonMissingInfo:
		return ReasonMissingInfo
	case ReasonExperimental:
		return ReasonExperimental
	case ReasonStepTherapy:
		return ReasonStepTherapy
	case ReasonQuantityLimit:
		return ReasonQuantityLimit
	case ReasonPriorAuthReq:
		return ReasonPriorAuthReq
	default:
		return ReasonOther
	}
}

// FileType represents the allowed denial document types for upload.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypePNG  FileType = "png"
	FileTypeJPG  FileType = "jpg"
	FileTypeTIFF FileType = "tiff"
)

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/png":       FileTypePNG,
	"image/jpeg":      FileTypeJPG,
	"image/tiff":      FileTypeTIFF,
}

// AppealStatus tracks the lifecycle of a generated appeal.
type AppealStatus string

const (
	AppealStatusGenerated AppealStatus = "generated"
	AppealStatusSubmitted AppealStatus = "submitted"
	AppealStatusApproved  AppealStatus = "approved"
	AppealStatusDenied    AppealStatus = "denied"
)

// ValidAppealStatuses maps status strings accepted by the status update endpoint.
var ValidAppealStatuses = map[string]AppealStatus{
	"generated": AppealStatusGenerated,
	"submitted": AppealStatusSubmitted,
	"approved":  AppealStatusApproved,
	"denied":    AppealStatusDenied,
}
