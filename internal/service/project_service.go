package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"solarops/internal/domain"
	"solarops/internal/offer"
	"solarops/internal/port"
)

// CreateProjectInput is the DTO for creating a project.
type CreateProjectInput struct {
	Name          string   `json:"name" binding:"required"`
	ClientName    string   `json:"client_name" binding:"required"`
	ClientContact string   `json:"client_contact"`
	Location      string   `json:"location"`
	CapacityKW    *float64 `json:"capacity_kw"`
	Status        string   `json:"status"`
	StartDate     *string  `json:"start_date"`
	EndDate       *string  `json:"end_date"`
	EstimatedCost *float64 `json:"estimated_cost"`
	Notes         string   `json:"notes"`
}

// UpdateProjectInput is the DTO for updating a project.
type UpdateProjectInput struct {
	Name          *string  `json:"name"`
	ClientName    *string  `json:"client_name"`
	ClientContact *string  `json:"client_contact"`
	Location      *string  `json:"location"`
	CapacityKW    *float64 `json:"capacity_kw"`
	Status        *string  `json:"status"`
	StartDate     *string  `json:"start_date"`
	EndDate       *string  `json:"end_date"`
	EstimatedCost *float64 `json:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost"`
	Notes         *string  `json:"notes"`
}

// ProjectMaterialInput is the DTO for planning a material on a project.
type ProjectMaterialInput struct {
	MaterialID      uuid.UUID `json:"material_id" binding:"required"`
	QuantityPlanned float64   `json:"quantity_planned" binding:"required,gt=0"`
	UnitPrice       *float64  `json:"unit_price"`
}

// UpdateProjectMaterialInput is the DTO for adjusting a planned material.
type UpdateProjectMaterialInput struct {
	QuantityPlanned *float64 `json:"quantity_planned"`
	QuantityUsed    *float64 `json:"quantity_used"`
	UnitPrice       *float64 `json:"unit_price"`
}

// MaterialUsedInput marks a quantity of a material as consumed on site.
type MaterialUsedInput struct {
	MaterialID uuid.UUID `json:"material_id" binding:"required"`
	Quantity   float64   `json:"quantity" binding:"required"`
}

// ProjectService defines the installation project contract.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, filter port.ProjectFilter) ([]domain.Project, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListMaterials(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMaterialDetail, error)
	AddMaterial(ctx context.Context, projectID uuid.UUID, input ProjectMaterialInput) (*domain.ProjectMaterial, error)
	UpdateMaterial(ctx context.Context, projectID, materialID uuid.UUID, input UpdateProjectMaterialInput) (*domain.ProjectMaterial, error)
	RemoveMaterial(ctx context.Context, projectID, materialID uuid.UUID) error
	UseMaterials(ctx context.Context, projectID uuid.UUID, used []MaterialUsedInput) error
	OfferPDF(ctx context.Context, projectID uuid.UUID) ([]byte, error)
}

type projectService struct {
	projects  port.ProjectRepository
	materials port.MaterialRepository
	stock     StockService
}

// NewProjectService creates a new ProjectService implementation.
func NewProjectService(projects port.ProjectRepository, materials port.MaterialRepository, stock StockService) ProjectService {
	return &projectService{projects: projects, materials: materials, stock: stock}
}

// parseDate accepts ISO dates; a malformed value clears the field rather than
// failing the request.
func parseDate(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil
	}
	return &t
}

func (s *projectService) Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	status := domain.ProjectPlanned
	if input.Status != "" {
		status = domain.ProjectStatus(input.Status)
		if !domain.ValidProjectStatuses[status] {
			return nil, domain.ErrInvalidProjectStatus
		}
	}

	project := &domain.Project{
		Name:          input.Name,
		ClientName:    input.ClientName,
		ClientContact: input.ClientContact,
		Location:      input.Location,
		CapacityKW:    input.CapacityKW,
		Status:        status,
		StartDate:     parseDate(input.StartDate),
		EndDate:       parseDate(input.EndDate),
		EstimatedCost: input.EstimatedCost,
		Notes:         input.Notes,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, filter port.ProjectFilter) ([]domain.Project, int, error) {
	if filter.Status != "" && !domain.ValidProjectStatuses[filter.Status] {
		return nil, 0, domain.ErrInvalidProjectStatus
	}
	return s.projects.List(ctx, filter)
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.ClientName != nil {
		project.ClientName = *input.ClientName
	}
	if input.ClientContact != nil {
		project.ClientContact = *input.ClientContact
	}
	if input.Location != nil {
		project.Location = *input.Location
	}
	if input.CapacityKW != nil {
		project.CapacityKW = input.CapacityKW
	}
	if input.Status != nil {
		status := domain.ProjectStatus(*input.Status)
		if !domain.ValidProjectStatuses[status] {
			return nil, domain.ErrInvalidProjectStatus
		}
		project.Status = status
	}
	if input.StartDate != nil {
		project.StartDate = parseDate(input.StartDate)
	}
	if input.EndDate != nil {
		project.EndDate = parseDate(input.EndDate)
	}
	if input.EstimatedCost != nil {
		project.EstimatedCost = input.EstimatedCost
	}
	if input.ActualCost != nil {
		project.ActualCost = input.ActualCost
	}
	if input.Notes != nil {
		project.Notes = *input.Notes
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.projects.Delete(ctx, id)
}

func (s *projectService) ListMaterials(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMaterialDetail, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.projects.ListMaterials(ctx, projectID)
}

func (s *projectService) AddMaterial(ctx context.Context, projectID uuid.UUID, input ProjectMaterialInput) (*domain.ProjectMaterial, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	material, err := s.materials.GetByID(ctx, input.MaterialID)
	if err != nil {
		return nil, err
	}

	unitPrice := material.UnitPrice
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}
	pm := &domain.ProjectMaterial{
		ProjectID:       projectID,
		MaterialID:      input.MaterialID,
		QuantityPlanned: input.QuantityPlanned,
		UnitPrice:       unitPrice,
	}
	if err := s.projects.AddMaterial(ctx, pm); err != nil {
		return nil, err
	}
	return pm, nil
}

func (s *projectService) UpdateMaterial(ctx context.Context, projectID, materialID uuid.UUID, input UpdateProjectMaterialInput) (*domain.ProjectMaterial, error) {
	details, err := s.projects.ListMaterials(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var pm *domain.ProjectMaterial
	for i := range details {
		if details[i].MaterialID == materialID {
			pm = &details[i].ProjectMaterial
			break
		}
	}
	if pm == nil {
		return nil, domain.ErrNotFound
	}

	if input.QuantityPlanned != nil {
		pm.QuantityPlanned = *input.QuantityPlanned
	}
	if input.QuantityUsed != nil {
		pm.QuantityUsed = *input.QuantityUsed
	}
	if input.UnitPrice != nil {
		pm.UnitPrice = *input.UnitPrice
	}
	if err := s.projects.UpdateMaterial(ctx, pm); err != nil {
		return nil, err
	}
	return pm, nil
}

func (s *projectService) RemoveMaterial(ctx context.Context, projectID, materialID uuid.UUID) error {
	return s.projects.RemoveMaterial(ctx, projectID, materialID)
}

// OfferPDF renders a commercial offer for the project with its planned
// materials.
func (s *projectService) OfferPDF(ctx context.Context, projectID uuid.UUID) ([]byte, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	materials, err := s.projects.ListMaterials(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return offer.CommercialOfferPDF(project, materials)
}

// UseMaterials consumes stock for the given quantities, records "out"
// movements referencing the project, and bumps quantity_used on each planned
// material. Entries with non-positive quantities are skipped.
func (s *projectService) UseMaterials(ctx context.Context, projectID uuid.UUID, used []MaterialUsedInput) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}

	planned, err := s.projects.ListMaterials(ctx, projectID)
	if err != nil {
		return err
	}
	plannedByMaterial := make(map[uuid.UUID]*domain.ProjectMaterial, len(planned))
	for i := range planned {
		plannedByMaterial[planned[i].MaterialID] = &planned[i].ProjectMaterial
	}

	for _, item := range used {
		if item.Quantity <= 0 {
			continue
		}

		refID := project.ID
		_, err := s.stock.RecordMovement(ctx, RecordMovementInput{
			MaterialID:    item.MaterialID,
			MovementType:  string(domain.MovementOut),
			Quantity:      item.Quantity,
			ReferenceType: string(domain.ReferenceProject),
			ReferenceID:   &refID,
			Notes:         fmt.Sprintf("Used in project: %s", project.Name),
		})
		if err != nil {
			return err
		}

		if pm, ok := plannedByMaterial[item.MaterialID]; ok {
			pm.QuantityUsed += item.Quantity
			if err := s.projects.UpdateMaterial(ctx, pm); err != nil {
				return err
			}
		}
	}
	return nil
}
