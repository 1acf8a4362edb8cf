package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"solarops/internal/domain"
	"solarops/internal/port"
	"solarops/internal/service"
	"solarops/mocks"
)

func setupStockService() (service.StockService, *mocks.MockStockRepo, *mocks.MockMaterialRepo) {
	stockRepo := new(mocks.MockStockRepo)
	materialRepo := new(mocks.MockMaterialRepo)
	svc := service.NewStockService(stockRepo, materialRepo)
	return svc, stockRepo, materialRepo
}

func stockRow(materialID uuid.UUID, quantity float64) *domain.Stock {
	return &domain.Stock{
		ID:         uuid.New(),
		MaterialID: materialID,
		Quantity:   quantity,
		Location:   "Depozit A",
	}
}

// --- RecordMovement ---

func TestStockService_RecordMovement_In(t *testing.T) {
	svc, stockRepo, materialRepo := setupStockService()
	materialID := uuid.New()

	materialRepo.On("GetByID", mock.Anything, materialID).Return(&domain.Material{ID: materialID}, nil)
	stockRepo.On("GetByMaterial", mock.Anything, materialID).Return(stockRow(materialID, 10), nil)
	stockRepo.On("UpdateQuantity", mock.Anything, mock.MatchedBy(func(s *domain.Stock) bool {
		return s.Quantity == 15
	})).Return(nil)
	stockRepo.On("RecordMovement", mock.Anything, mock.AnythingOfType("*domain.StockMovement")).Return(nil)

	movement, err := svc.RecordMovement(context.Background(), service.RecordMovementInput{
		MaterialID:   materialID,
		MovementType: "in",
		Quantity:     5,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.MovementIn, movement.MovementType)
	assert.Equal(t, domain.ReferenceManual, movement.ReferenceType)
	stockRepo.AssertExpectations(t)
}

func TestStockService_RecordMovement_TransferAdds(t *testing.T) {
	svc, stockRepo, materialRepo := setupStockService()
	materialID := uuid.New()

	materialRepo.On("GetByID", mock.Anything, materialID).Return(&domain.Material{ID: materialID}, nil)
	stockRepo.On("GetByMaterial", mock.Anything, materialID).Return(stockRow(materialID, 3), nil)
	stockRepo.On("UpdateQuantity", mock.Anything, mock.MatchedBy(func(s *domain.Stock) bool {
		return s.Quantity == 7
	})).Return(nil)
	stockRepo.On("RecordMovement", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.RecordMovement(context.Background(), service.RecordMovementInput{
		MaterialID:   materialID,
		MovementType: "transfer",
		Quantity:     4,
	})

	require.NoError(t, err)
	stockRepo.AssertExpectations(t)
}

func TestStockService_RecordMovement_OutSubtracts(t *testing.T) {
	svc, stockRepo, materialRepo := setupStockService()
	materialID := uuid.New()

	materialRepo.On("GetByID", mock.Anything, materialID).Return(&domain.Material{ID: materialID}, nil)
	stockRepo.On("GetByMaterial", mock.Anything, materialID).Return(stockRow(materialID, 10), nil)
	stockRepo.On("UpdateQuantity", mock.Anything, mock.MatchedBy(func(s *domain.Stock) bool {
		return s.Quantity == 4
	})).Return(nil)
	stockRepo.On("RecordMovement", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.RecordMovement(context.Background(), service.RecordMovementInput{
		MaterialID:   materialID,
		MovementType: "out",
		Quantity:     6,
	})

	require.NoError(t, err)
	stockRepo.AssertExpectations(t)
}

func TestStockService_RecordMovement_OutInsufficientStock(t *testing.T) {
	svc, stockRepo, materialRepo := setupStockService()
	materialID := uuid.New()

	materialRepo.On("GetByID", mock.Anything, materialID).Return(&domain.Material{ID: materialID}, nil)
	stockRepo.On("GetByMaterial", mock.Anything, materialID).Return(stockRow(materialID, 2), nil)

	_, err := svc.RecordMovement(context.Background(), service.RecordMovementInput{
		MaterialID:   materialID,
		MovementType: "out",
		Quantity:     5,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	stockRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything)
	stockRepo.AssertNotCalled(t, "RecordMovement", mock.Anything, mock.Anything)
}

func TestStockService_RecordMovement_AdjustmentSetsLevel(t *testing.T) {
	svc, stockRepo, materialRepo := setupStockService()
	materialID := uuid.New()

	materialRepo.On("GetByID", mock.Anything, materialID).Return(&domain.Material{ID: materialID}, nil)
	stockRepo.On("GetByMaterial", mock.Anything, materialID).Return(stockRow(materialID, 99), nil)
	stockRepo.On("UpdateQuantity", mock.Anything, mock.MatchedBy(func(s *domain.Stock) bool {
		return s.Quantity == 25
	})).Return(nil)
	stockRepo.On("RecordMovement", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.RecordMovement(context.Background(), service.RecordMovementInput{
		MaterialID:   materialID,
		MovementType: "adjustment",
		Quantity:     25,
	})

	require.NoError(t, err)
	stockRepo.AssertExpectations(t)
}

func TestStockService_RecordMovement_InvalidType(t *testing.T) {
	svc, _, _ := setupStockService()

	_, err := svc.RecordMovement(context.Background(), service.RecordMovementInput{
		MaterialID:   uuid.New(),
		MovementType: "teleport",
		Quantity:     1,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
}

func TestStockService_RecordMovement_UnknownMaterial(t *testing.T) {
	svc, _, materialRepo := setupStockService()
	materialID := uuid.New()

	materialRepo.On("GetByID", mock.Anything, materialID).Return(nil, domain.ErrNotFound)

	_, err := svc.RecordMovement(context.Background(), service.RecordMovementInput{
		MaterialID:   materialID,
		MovementType: "in",
		Quantity:     1,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockService_RecordMovement_CreatesMissingStockRow(t *testing.T) {
	svc, stockRepo, materialRepo := setupStockService()
	materialID := uuid.New()

	materialRepo.On("GetByID", mock.Anything, materialID).Return(&domain.Material{ID: materialID}, nil)
	stockRepo.On("GetByMaterial", mock.Anything, materialID).Return(nil, domain.ErrNotFound).Once()
	stockRepo.On("CreateForMaterial", mock.Anything, materialID, "").Return(nil)
	stockRepo.On("GetByMaterial", mock.Anything, materialID).Return(stockRow(materialID, 0), nil)
	stockRepo.On("UpdateQuantity", mock.Anything, mock.MatchedBy(func(s *domain.Stock) bool {
		return s.Quantity == 5
	})).Return(nil)
	stockRepo.On("RecordMovement", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.RecordMovement(context.Background(), service.RecordMovementInput{
		MaterialID:   materialID,
		MovementType: "in",
		Quantity:     5,
	})

	require.NoError(t, err)
	stockRepo.AssertExpectations(t)
}

func TestStockService_RecordMovement_KeepsReference(t *testing.T) {
	svc, stockRepo, materialRepo := setupStockService()
	materialID := uuid.New()
	projectID := uuid.New()

	materialRepo.On("GetByID", mock.Anything, materialID).Return(&domain.Material{ID: materialID}, nil)
	stockRepo.On("GetByMaterial", mock.Anything, materialID).Return(stockRow(materialID, 10), nil)
	stockRepo.On("UpdateQuantity", mock.Anything, mock.Anything).Return(nil)
	stockRepo.On("RecordMovement", mock.Anything, mock.Anything).Return(nil)

	movement, err := svc.RecordMovement(context.Background(), service.RecordMovementInput{
		MaterialID:    materialID,
		MovementType:  "out",
		Quantity:      2,
		ReferenceType: "project",
		ReferenceID:   &projectID,
		Notes:         "Used in project: Casa Popescu",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReferenceProject, movement.ReferenceType)
	require.NotNil(t, movement.ReferenceID)
	assert.Equal(t, projectID, *movement.ReferenceID)
}

// --- Update ---

func TestStockService_Update_SetsQuantityAndLocation(t *testing.T) {
	svc, stockRepo, _ := setupStockService()
	materialID := uuid.New()
	location := "Depozit B"

	stockRepo.On("GetByMaterial", mock.Anything, materialID).Return(stockRow(materialID, 10), nil)
	stockRepo.On("UpdateQuantity", mock.Anything, mock.MatchedBy(func(s *domain.Stock) bool {
		return s.Quantity == 40 && s.Location == "Depozit B"
	})).Return(nil)

	stock, err := svc.Update(context.Background(), materialID, service.UpdateStockInput{
		Quantity: 40,
		Location: &location,
	})

	require.NoError(t, err)
	assert.Equal(t, 40.0, stock.Quantity)
	stockRepo.AssertExpectations(t)
}

// --- ListMovements ---

func TestStockService_ListMovements_InvalidTypeFilter(t *testing.T) {
	svc, _, _ := setupStockService()

	_, _, err := svc.ListMovements(context.Background(), port.MovementFilter{MovementType: "warp"})

	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
}
