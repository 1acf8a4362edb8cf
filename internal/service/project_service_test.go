package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"solarops/internal/domain"
	"solarops/internal/service"
	"solarops/mocks"
)

func setupProjectService() (service.ProjectService, *mocks.MockProjectRepo, *mocks.MockMaterialRepo, *mocks.MockStockService) {
	projectRepo := new(mocks.MockProjectRepo)
	materialRepo := new(mocks.MockMaterialRepo)
	stockSvc := new(mocks.MockStockService)
	svc := service.NewProjectService(projectRepo, materialRepo, stockSvc)
	return svc, projectRepo, materialRepo, stockSvc
}

// --- Create ---

func TestProjectService_Create_DefaultsToPlanned(t *testing.T) {
	svc, projectRepo, _, _ := setupProjectService()

	projectRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
		return p.Status == domain.ProjectPlanned
	})).Return(nil)

	project, err := svc.Create(context.Background(), service.CreateProjectInput{
		Name:       "Casa Popescu",
		ClientName: "Ion Popescu",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ProjectPlanned, project.Status)
}

func TestProjectService_Create_InvalidStatus(t *testing.T) {
	svc, _, _, _ := setupProjectService()

	_, err := svc.Create(context.Background(), service.CreateProjectInput{
		Name:       "Casa Popescu",
		ClientName: "Ion Popescu",
		Status:     "paused",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidProjectStatus)
}

func TestProjectService_Create_ParsesDates(t *testing.T) {
	svc, projectRepo, _, _ := setupProjectService()
	start := "2024-04-01"
	bad := "01.04.2024"

	projectRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
		return p.StartDate != nil &&
			p.StartDate.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) &&
			p.EndDate == nil
	})).Return(nil)

	_, err := svc.Create(context.Background(), service.CreateProjectInput{
		Name:       "Casa Popescu",
		ClientName: "Ion Popescu",
		StartDate:  &start,
		EndDate:    &bad,
	})

	require.NoError(t, err)
	projectRepo.AssertExpectations(t)
}

// --- AddMaterial ---

func TestProjectService_AddMaterial_DefaultsUnitPrice(t *testing.T) {
	svc, projectRepo, materialRepo, _ := setupProjectService()
	projectID := uuid.New()
	materialID := uuid.New()

	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID}, nil)
	materialRepo.On("GetByID", mock.Anything, materialID).Return(&domain.Material{ID: materialID, UnitPrice: 850}, nil)
	projectRepo.On("AddMaterial", mock.Anything, mock.MatchedBy(func(pm *domain.ProjectMaterial) bool {
		return pm.UnitPrice == 850 && pm.QuantityPlanned == 10
	})).Return(nil)

	pm, err := svc.AddMaterial(context.Background(), projectID, service.ProjectMaterialInput{
		MaterialID:      materialID,
		QuantityPlanned: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, 850.0, pm.UnitPrice)
}

func TestProjectService_AddMaterial_ExplicitPriceWins(t *testing.T) {
	svc, projectRepo, materialRepo, _ := setupProjectService()
	projectID := uuid.New()
	materialID := uuid.New()
	price := 799.0

	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID}, nil)
	materialRepo.On("GetByID", mock.Anything, materialID).Return(&domain.Material{ID: materialID, UnitPrice: 850}, nil)
	projectRepo.On("AddMaterial", mock.Anything, mock.MatchedBy(func(pm *domain.ProjectMaterial) bool {
		return pm.UnitPrice == 799
	})).Return(nil)

	_, err := svc.AddMaterial(context.Background(), projectID, service.ProjectMaterialInput{
		MaterialID:      materialID,
		QuantityPlanned: 10,
		UnitPrice:       &price,
	})

	require.NoError(t, err)
	projectRepo.AssertExpectations(t)
}

// --- UseMaterials ---

func TestProjectService_UseMaterials_RecordsOutMovements(t *testing.T) {
	svc, projectRepo, _, stockSvc := setupProjectService()
	projectID := uuid.New()
	materialID := uuid.New()

	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{
		ID:   projectID,
		Name: "Casa Popescu",
	}, nil)
	projectRepo.On("ListMaterials", mock.Anything, projectID).Return([]domain.ProjectMaterialDetail{
		{ProjectMaterial: domain.ProjectMaterial{
			ProjectID:       projectID,
			MaterialID:      materialID,
			QuantityPlanned: 10,
			QuantityUsed:    2,
		}},
	}, nil)
	stockSvc.On("RecordMovement", mock.Anything, mock.MatchedBy(func(in service.RecordMovementInput) bool {
		return in.MaterialID == materialID &&
			in.MovementType == "out" &&
			in.Quantity == 3 &&
			in.ReferenceType == "project" &&
			in.Notes == "Used in project: Casa Popescu"
	})).Return(&domain.StockMovement{}, nil)
	projectRepo.On("UpdateMaterial", mock.Anything, mock.MatchedBy(func(pm *domain.ProjectMaterial) bool {
		return pm.QuantityUsed == 5
	})).Return(nil)

	err := svc.UseMaterials(context.Background(), projectID, []service.MaterialUsedInput{
		{MaterialID: materialID, Quantity: 3},
	})

	require.NoError(t, err)
	stockSvc.AssertExpectations(t)
	projectRepo.AssertExpectations(t)
}

func TestProjectService_UseMaterials_SkipsNonPositive(t *testing.T) {
	svc, projectRepo, _, stockSvc := setupProjectService()
	projectID := uuid.New()

	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID}, nil)
	projectRepo.On("ListMaterials", mock.Anything, projectID).Return([]domain.ProjectMaterialDetail{}, nil)

	err := svc.UseMaterials(context.Background(), projectID, []service.MaterialUsedInput{
		{MaterialID: uuid.New(), Quantity: 0},
		{MaterialID: uuid.New(), Quantity: -4},
	})

	require.NoError(t, err)
	stockSvc.AssertNotCalled(t, "RecordMovement", mock.Anything, mock.Anything)
}

func TestProjectService_UseMaterials_InsufficientStockStops(t *testing.T) {
	svc, projectRepo, _, stockSvc := setupProjectService()
	projectID := uuid.New()

	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID}, nil)
	projectRepo.On("ListMaterials", mock.Anything, projectID).Return([]domain.ProjectMaterialDetail{}, nil)
	stockSvc.On("RecordMovement", mock.Anything, mock.Anything).Return(nil, domain.ErrInsufficientStock)

	err := svc.UseMaterials(context.Background(), projectID, []service.MaterialUsedInput{
		{MaterialID: uuid.New(), Quantity: 100},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// --- UpdateMaterial ---

func TestProjectService_UpdateMaterial_NotPlanned(t *testing.T) {
	svc, projectRepo, _, _ := setupProjectService()
	projectID := uuid.New()

	projectRepo.On("ListMaterials", mock.Anything, projectID).Return([]domain.ProjectMaterialDetail{}, nil)

	_, err := svc.UpdateMaterial(context.Background(), projectID, uuid.New(), service.UpdateProjectMaterialInput{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
