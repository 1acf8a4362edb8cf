package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"solarops/internal/domain"
	"solarops/internal/port"
)

// UpdateStockInput is the DTO for setting a stock level directly.
type UpdateStockInput struct {
	Quantity float64 `json:"quantity" binding:"min=0"`
	Location *string `json:"location"`
}

// RecordMovementInput is the DTO for recording a stock movement.
type RecordMovementInput struct {
	MaterialID    uuid.UUID  `json:"material_id" binding:"required"`
	MovementType  string     `json:"movement_type" binding:"required"`
	Quantity      float64    `json:"quantity" binding:"required,gt=0"`
	ReferenceType string     `json:"reference_type"`
	ReferenceID   *uuid.UUID `json:"reference_id"`
	Notes         string     `json:"notes"`
	CreatedBy     string     `json:"created_by"`
}

// StockService defines the inventory level contract.
type StockService interface {
	List(ctx context.Context, offset, limit int) ([]domain.StockLevel, int, error)
	ListLow(ctx context.Context) ([]domain.StockLevel, error)
	GetByMaterial(ctx context.Context, materialID uuid.UUID) (*domain.Stock, error)
	Update(ctx context.Context, materialID uuid.UUID, input UpdateStockInput) (*domain.Stock, error)
	RecordMovement(ctx context.Context, input RecordMovementInput) (*domain.StockMovement, error)
	ListMovements(ctx context.Context, filter port.MovementFilter) ([]domain.StockMovementDetail, int, error)
}

type stockService struct {
	stock     port.StockRepository
	materials port.MaterialRepository
}

// NewStockService creates a new StockService implementation.
func NewStockService(stock port.StockRepository, materials port.MaterialRepository) StockService {
	return &stockService{stock: stock, materials: materials}
}

func (s *stockService) List(ctx context.Context, offset, limit int) ([]domain.StockLevel, int, error) {
	return s.stock.List(ctx, offset, limit)
}

func (s *stockService) ListLow(ctx context.Context) ([]domain.StockLevel, error) {
	return s.stock.ListLow(ctx)
}

func (s *stockService) GetByMaterial(ctx context.Context, materialID uuid.UUID) (*domain.Stock, error) {
	return s.stock.GetByMaterial(ctx, materialID)
}

func (s *stockService) Update(ctx context.Context, materialID uuid.UUID, input UpdateStockInput) (*domain.Stock, error) {
	stock, err := s.stock.GetByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}

	stock.Quantity = input.Quantity
	if input.Location != nil {
		stock.Location = *input.Location
	}
	if err := s.stock.UpdateQuantity(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// RecordMovement applies a movement to the material's stock level and persists
// the movement record. "in" and "transfer" add, "out" subtracts and fails on
// insufficient stock, "adjustment" sets the level to the given quantity.
func (s *stockService) RecordMovement(ctx context.Context, input RecordMovementInput) (*domain.StockMovement, error) {
	movementType := domain.MovementType(input.MovementType)
	if !domain.ValidMovementTypes[movementType] {
		return nil, domain.ErrInvalidMovementType
	}

	if _, err := s.materials.GetByID(ctx, input.MaterialID); err != nil {
		return nil, err
	}

	stock, err := s.stock.GetByMaterial(ctx, input.MaterialID)
	if errors.Is(err, domain.ErrNotFound) {
		if err = s.stock.CreateForMaterial(ctx, input.MaterialID, ""); err != nil {
			return nil, err
		}
		stock, err = s.stock.GetByMaterial(ctx, input.MaterialID)
	}
	if err != nil {
		return nil, err
	}

	switch movementType {
	case domain.MovementIn, domain.MovementTransfer:
		stock.Quantity += input.Quantity
	case domain.MovementOut:
		if stock.Quantity < input.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		stock.Quantity -= input.Quantity
	case domain.MovementAdjustment:
		stock.Quantity = input.Quantity
	}

	if err := s.stock.UpdateQuantity(ctx, stock); err != nil {
		return nil, err
	}

	referenceType := domain.ReferenceType(input.ReferenceType)
	if referenceType == "" {
		referenceType = domain.ReferenceManual
	}
	movement := &domain.StockMovement{
		MaterialID:    input.MaterialID,
		MovementType:  movementType,
		Quantity:      input.Quantity,
		ReferenceType: referenceType,
		ReferenceID:   input.ReferenceID,
		Notes:         input.Notes,
		CreatedBy:     input.CreatedBy,
	}
	if err := s.stock.RecordMovement(ctx, movement); err != nil {
		return nil, err
	}
	return movement, nil
}

func (s *stockService) ListMovements(ctx context.Context, filter port.MovementFilter) ([]domain.StockMovementDetail, int, error) {
	if filter.MovementType != "" && !domain.ValidMovementTypes[filter.MovementType] {
		return nil, 0, domain.ErrInvalidMovementType
	}
	return s.stock.ListMovements(ctx, filter)
}
