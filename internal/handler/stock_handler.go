package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"solarops/internal/domain"
	"solarops/internal/port"
	"solarops/internal/service"
)

// StockHandler handles inventory level endpoints.
type StockHandler struct {
	stockService service.StockService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// List handles GET /api/v1/stock
func (h *StockHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	levels, total, err := h.stockService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, levels, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListLow handles GET /api/v1/stock/low
func (h *StockHandler) ListLow(c *gin.Context) {
	levels, err := h.stockService.ListLow(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, levels)
}

// GetByMaterial handles GET /api/v1/stock/:material_id
func (h *StockHandler) GetByMaterial(c *gin.Context) {
	materialID, err := uuid.Parse(c.Param("material_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid material ID")
		return
	}

	stock, err := h.stockService.GetByMaterial(c.Request.Context(), materialID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stock)
}

// Update handles PUT /api/v1/stock/:material_id
func (h *StockHandler) Update(c *gin.Context) {
	materialID, err := uuid.Parse(c.Param("material_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid material ID")
		return
	}

	var input service.UpdateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	stock, err := h.stockService.Update(c.Request.Context(), materialID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stock)
}

// RecordMovement handles POST /api/v1/stock/movement
func (h *StockHandler) RecordMovement(c *gin.Context) {
	var input service.RecordMovementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	movement, err := h.stockService.RecordMovement(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, movement)
}

// ListMovements handles GET /api/v1/stock/movements
func (h *StockHandler) ListMovements(c *gin.Context) {
	offset, limit := pagination(c)
	filter := port.MovementFilter{
		MovementType: domain.MovementType(c.Query("movement_type")),
		Offset:       offset,
		Limit:        limit,
	}
	if raw := c.Query("material_id"); raw != "" {
		materialID, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid material ID")
			return
		}
		filter.MaterialID = &materialID
	}

	movements, total, err := h.stockService.ListMovements(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, movements, PagMeta{Total: total, Offset: offset, Limit: limit})
}
