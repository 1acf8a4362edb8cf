package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"solarops/internal/domain"
	"solarops/internal/service"
)

// PurchaseHandler handles purchase endpoints.
type PurchaseHandler struct {
	purchaseService service.PurchaseService
	maxFileSize     int64
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService service.PurchaseService, maxFileSize int64) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService, maxFileSize: maxFileSize}
}

// Create handles POST /api/v1/purchases
func (h *PurchaseHandler) Create(c *gin.Context) {
	var input service.CreatePurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	purchase, err := h.purchaseService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, purchase)
}

// List handles GET /api/v1/purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	purchases, total, err := h.purchaseService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, purchases, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/purchases/:id
func (h *PurchaseHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, purchase)
}

// ParsePreview handles POST /api/v1/purchases/parse-preview. It runs the
// in-process document parser over the upload and returns the extracted data
// without creating any records.
func (h *PurchaseHandler) ParsePreview(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > h.maxFileSize {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "READ_FAILED", "could not read uploaded file")
		return
	}
	if int64(len(content)) > h.maxFileSize {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	parsed, err := h.purchaseService.ParsePreview(c.Request.Context(), header.Filename, content)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, parsed)
}
