package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrAppealNotFound      = errors.New("appeal not found")
	ErrPayerNotFound       = errors.New("payer not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrDenialTextTooShort  = errors.New("denial text is too short")
	ErrInvalidStatus       = errors.New("invalid appeal status")
	ErrOCRFailed           = errors.New("text extraction from document failed")
	ErrEmptyDocument       = errors.New("document contains no extractable text")
)
