package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"solarops/internal/domain"
	"solarops/internal/port"
	"solarops/internal/service"
)

// MockStockService is a mock implementation of service.StockService.
type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) List(ctx context.Context, offset, limit int) ([]domain.StockLevel, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.StockLevel), args.Int(1), args.Error(2)
}

func (m *MockStockService) ListLow(ctx context.Context) ([]domain.StockLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockLevel), args.Error(1)
}

func (m *MockStockService) GetByMaterial(ctx context.Context, materialID uuid.UUID) (*domain.Stock, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stock), args.Error(1)
}

func (m *MockStockService) Update(ctx context.Context, materialID uuid.UUID, input service.UpdateStockInput) (*domain.Stock, error) {
	args := m.Called(ctx, materialID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stock), args.Error(1)
}

func (m *MockStockService) RecordMovement(ctx context.Context, input service.RecordMovementInput) (*domain.StockMovement, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

func (m *MockStockService) ListMovements(ctx context.Context, filter port.MovementFilter) ([]domain.StockMovementDetail, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.StockMovementDetail), args.Int(1), args.Error(2)
}
