package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrDuplicateSKU         = errors.New("sku already exists")
	ErrDuplicateInvoice     = errors.New("invoice already uploaded")
	ErrInvalidCategory      = errors.New("invalid material category")
	ErrInvalidMovementType  = errors.New("invalid movement type")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrUnsupportedFormat    = errors.New("unsupported file format")
	ErrNotXML               = errors.New("only XML files are allowed")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrExtractionFailed     = errors.New("text extraction failed")
	ErrUploadFailed         = errors.New("file upload to storage failed")
	ErrParserUnavailable    = errors.New("xml parser service is not available")
	ErrParserAuthFailed     = errors.New("xml parser authentication failed")
	ErrParserFailed         = errors.New("xml parser rejected the invoice")
	ErrParserTimeout        = errors.New("xml parser service timed out")
)
