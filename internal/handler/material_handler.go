package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"solarops/internal/domain"
	"solarops/internal/port"
	"solarops/internal/service"
)

// MaterialHandler handles material catalog endpoints.
type MaterialHandler struct {
	materialService service.MaterialService
}

// NewMaterialHandler creates a new MaterialHandler.
func NewMaterialHandler(materialService service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// Create handles POST /api/v1/materials
func (h *MaterialHandler) Create(c *gin.Context) {
	var input service.CreateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	material, err := h.materialService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, material)
}

// List handles GET /api/v1/materials
func (h *MaterialHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	filter := port.MaterialFilter{
		Search:   c.Query("search"),
		Category: domain.MaterialCategory(c.Query("category")),
		Offset:   offset,
		Limit:    limit,
	}

	materials, total, err := h.materialService.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, materials, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/materials/:id
func (h *MaterialHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid material ID")
		return
	}

	material, err := h.materialService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, material)
}

// Update handles PUT /api/v1/materials/:id
func (h *MaterialHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid material ID")
		return
	}

	var input service.UpdateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	material, err := h.materialService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, material)
}

// Delete handles DELETE /api/v1/materials/:id
func (h *MaterialHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid material ID")
		return
	}

	if err := h.materialService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "material deleted"})
}
