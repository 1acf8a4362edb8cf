package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"solarops/internal/domain"
	"solarops/internal/service"
)

// InvoiceHandler handles supplier invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	maxFileSize    int64
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService, maxFileSize int64) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, maxFileSize: maxFileSize}
}

// List handles GET /api/v1/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	invoices, total, err := h.invoiceService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}

// Upload handles POST /api/v1/invoices/upload. The XML is stored, parsed by
// the parser service, and turned into purchase and invoice records.
func (h *InvoiceHandler) Upload(c *gin.Context) {
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

	result, err := h.invoiceService.Upload(c.Request.Context(), header.Filename, content)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// DownloadURL handles GET /api/v1/invoices/:id/download
func (h *InvoiceHandler) DownloadURL(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	url, err := h.invoiceService.DownloadURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}
