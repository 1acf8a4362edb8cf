package service

import (
	"context"

	"github.com/google/uuid"

	"solarops/internal/domain"
	"solarops/internal/port"
)

// CreateMaterialInput is the DTO for creating a material.
type CreateMaterialInput struct {
	Name        string  `json:"name" binding:"required"`
	SKU         string  `json:"sku" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Unit        string  `json:"unit" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
	MinStock    float64 `json:"min_stock"`
	Location    string  `json:"location"`
}

// UpdateMaterialInput is the DTO for updating a material.
type UpdateMaterialInput struct {
	Name        *string  `json:"name"`
	SKU         *string  `json:"sku"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Unit        *string  `json:"unit"`
	UnitPrice   *float64 `json:"unit_price"`
	MinStock    *float64 `json:"min_stock"`
}

// MaterialService defines the material catalog contract.
type MaterialService interface {
	Create(ctx context.Context, input CreateMaterialInput) (*domain.Material, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error)
	List(ctx context.Context, filter port.MaterialFilter) ([]domain.MaterialWithStock, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateMaterialInput) (*domain.Material, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type materialService struct {
	materials port.MaterialRepository
	stock     port.StockRepository
}

// NewMaterialService creates a new MaterialService implementation.
func NewMaterialService(materials port.MaterialRepository, stock port.StockRepository) MaterialService {
	return &materialService{materials: materials, stock: stock}
}

func (s *materialService) Create(ctx context.Context, input CreateMaterialInput) (*domain.Material, error) {
	category := domain.MaterialCategory(input.Category)
	if !domain.ValidCategories[category] {
		return nil, domain.ErrInvalidCategory
	}

	material := &domain.Material{
		Name:        input.Name,
		SKU:         input.SKU,
		Description: input.Description,
		Category:    category,
		Unit:        input.Unit,
		UnitPrice:   input.UnitPrice,
		MinStock:    input.MinStock,
	}
	if err := s.materials.Create(ctx, material); err != nil {
		return nil, err
	}

	// Every material gets a stock row so listings never miss one.
	if err := s.stock.CreateForMaterial(ctx, material.ID, input.Location); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *materialService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	return s.materials.GetByID(ctx, id)
}

func (s *materialService) List(ctx context.Context, filter port.MaterialFilter) ([]domain.MaterialWithStock, int, error) {
	if filter.Category != "" && !domain.ValidCategories[filter.Category] {
		return nil, 0, domain.ErrInvalidCategory
	}
	return s.materials.List(ctx, filter)
}

func (s *materialService) Update(ctx context.Context, id uuid.UUID, input UpdateMaterialInput) (*domain.Material, error) {
	material, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		material.Name = *input.Name
	}
	if input.SKU != nil {
		material.SKU = *input.SKU
	}
	if input.Description != nil {
		material.Description = *input.Description
	}
	if input.Category != nil {
		category := domain.MaterialCategory(*input.Category)
		if !domain.ValidCategories[category] {
			return nil, domain.ErrInvalidCategory
		}
		material.Category = category
	}
	if input.Unit != nil {
		material.Unit = *input.Unit
	}
	if input.UnitPrice != nil {
		material.UnitPrice = *input.UnitPrice
	}
	if input.MinStock != nil {
		material.MinStock = *input.MinStock
	}

	if err := s.materials.Update(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *materialService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.materials.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.stock.DeleteByMaterial(ctx, id); err != nil {
		return err
	}
	return s.materials.Delete(ctx, id)
}
