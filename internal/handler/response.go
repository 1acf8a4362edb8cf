package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"solarops/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrDuplicateSKU):
		return http.StatusConflict, "DUPLICATE_SKU", "a material with this SKU already exists"
	case errors.Is(err, domain.ErrDuplicateInvoice):
		return http.StatusBadRequest, "DUPLICATE_INVOICE", "invoice already uploaded"
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest, "INVALID_CATEGORY", "invalid material category; allowed: panel, inverter, battery, cable, mounting, other"
	case errors.Is(err, domain.ErrInvalidMovementType):
		return http.StatusBadRequest, "INVALID_MOVEMENT_TYPE", "invalid movement type; allowed: in, out, adjustment, transfer"
	case errors.Is(err, domain.ErrInvalidProjectStatus):
		return http.StatusBadRequest, "INVALID_PROJECT_STATUS", "invalid project status; allowed: planned, in_progress, completed, cancelled"
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, "INSUFFICIENT_STOCK", "insufficient stock for this movement"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported document format; allowed: pdf, docx, doc, txt, xml"
	case errors.Is(err, domain.ErrNotXML):
		return http.StatusBadRequest, "NOT_XML", "only XML files are allowed"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusUnprocessableEntity, "EXTRACTION_FAILED", "could not extract text from document"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	case errors.Is(err, domain.ErrParserAuthFailed):
		return http.StatusBadGateway, "PARSER_AUTH_FAILED", "XML parser authentication failed; check the parser token configuration"
	case errors.Is(err, domain.ErrParserFailed):
		return http.StatusBadGateway, "PARSER_FAILED", "failed to parse XML invoice"
	case errors.Is(err, domain.ErrParserUnavailable):
		return http.StatusServiceUnavailable, "PARSER_UNAVAILABLE", "XML parser service is not available"
	case errors.Is(err, domain.ErrParserTimeout):
		return http.StatusGatewayTimeout, "PARSER_TIMEOUT", "XML parser service timed out"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

// pagination reads offset/limit query parameters with the standard bounds.
func pagination(c *gin.Context) (offset, limit int) {
	offset = intQuery(c, "offset", 0)
	limit = intQuery(c, "limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
