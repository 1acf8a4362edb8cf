package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"solarops/internal/domain"
	"solarops/internal/port"
	"solarops/internal/service"
)

// ProjectHandler handles installation project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create handles POST /api/v1/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var input service.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, project)
}

// List handles GET /api/v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	filter := port.ProjectFilter{
		Status: domain.ProjectStatus(c.Query("status")),
		Search: c.Query("search"),
		Offset: offset,
		Limit:  limit,
	}

	projects, total, err := h.projectService.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, projects, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, project)
}

// Update handles PUT /api/v1/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	var input service.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, project)
}

// Delete handles DELETE /api/v1/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "project deleted"})
}

// ListMaterials handles GET /api/v1/projects/:id/materials
func (h *ProjectHandler) ListMaterials(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	materials, err := h.projectService.ListMaterials(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, materials)
}

// AddMaterial handles POST /api/v1/projects/:id/materials
func (h *ProjectHandler) AddMaterial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	var input service.ProjectMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	pm, err := h.projectService.AddMaterial(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, pm)
}

// UpdateMaterial handles PUT /api/v1/projects/:id/materials/:material_id
func (h *ProjectHandler) UpdateMaterial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}
	materialID, err := uuid.Parse(c.Param("material_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid material ID")
		return
	}

	var input service.UpdateProjectMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	pm, err := h.projectService.UpdateMaterial(c.Request.Context(), id, materialID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, pm)
}

// RemoveMaterial handles DELETE /api/v1/projects/:id/materials/:material_id
func (h *ProjectHandler) RemoveMaterial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}
	materialID, err := uuid.Parse(c.Param("material_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid material ID")
		return
	}

	if err := h.projectService.RemoveMaterial(c.Request.Context(), id, materialID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "material removed from project"})
}

// UseMaterials handles POST /api/v1/projects/:id/use-materials
func (h *ProjectHandler) UseMaterials(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	var used []service.MaterialUsedInput
	if err := c.ShouldBindJSON(&used); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.projectService.UseMaterials(c.Request.Context(), id, used); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "materials marked as used"})
}

// ExportPDF handles GET /api/v1/projects/:id/export-pdf
func (h *ProjectHandler) ExportPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	pdf, err := h.projectService.OfferPDF(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("oferta_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
