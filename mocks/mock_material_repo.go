package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"solarops/internal/domain"
	"solarops/internal/port"
)

// MockMaterialRepo is a mock implementation of port.MaterialRepository.
type MockMaterialRepo struct {
	mock.Mock
}

func (m *MockMaterialRepo) Create(ctx context.Context, material *domain.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepo) GetBySKU(ctx context.Context, sku string) (*domain.Material, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepo) List(ctx context.Context, filter port.MaterialFilter) ([]domain.MaterialWithStock, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.MaterialWithStock), args.Int(1), args.Error(2)
}

func (m *MockMaterialRepo) Update(ctx context.Context, material *domain.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
