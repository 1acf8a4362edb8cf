package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"solarops/internal/csvexport"
	"solarops/internal/service"
)

// ExportHandler handles inventory export endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// MaterialsCSV handles GET /api/v1/export/materials.csv
func (h *ExportHandler) MaterialsCSV(c *gin.Context) {
	filename := csvexport.BuildFilename("materials", "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Status(http.StatusOK)

	if err := h.exportService.MaterialsCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers are already out; nothing useful left to send.
		_ = c.Error(err)
	}
}

// MaterialsXLSX handles GET /api/v1/export/materials.xlsx
func (h *ExportHandler) MaterialsXLSX(c *gin.Context) {
	data, err := h.exportService.MaterialsXLSX(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("materials", "xlsx")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// MovementsXLSX handles GET /api/v1/export/movements.xlsx
func (h *ExportHandler) MovementsXLSX(c *gin.Context) {
	data, err := h.exportService.MovementsXLSX(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("stock_movements", "xlsx")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
