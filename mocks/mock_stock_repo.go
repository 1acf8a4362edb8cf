package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"solarops/internal/domain"
	"solarops/internal/port"
)

// MockStockRepo is a mock implementation of port.StockRepository.
type MockStockRepo struct {
	mock.Mock
}

func (m *MockStockRepo) CreateForMaterial(ctx context.Context, materialID uuid.UUID, location string) error {
	args := m.Called(ctx, materialID, location)
	return args.Error(0)
}

func (m *MockStockRepo) GetByMaterial(ctx context.Context, materialID uuid.UUID) (*domain.Stock, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stock), args.Error(1)
}

func (m *MockStockRepo) List(ctx context.Context, offset, limit int) ([]domain.StockLevel, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.StockLevel), args.Int(1), args.Error(2)
}

func (m *MockStockRepo) ListLow(ctx context.Context) ([]domain.StockLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockLevel), args.Error(1)
}

func (m *MockStockRepo) UpdateQuantity(ctx context.Context, stock *domain.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepo) DeleteByMaterial(ctx context.Context, materialID uuid.UUID) error {
	args := m.Called(ctx, materialID)
	return args.Error(0)
}

func (m *MockStockRepo) RecordMovement(ctx context.Context, movement *domain.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockRepo) ListMovements(ctx context.Context, filter port.MovementFilter) ([]domain.StockMovementDetail, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.StockMovementDetail), args.Int(1), args.Error(2)
}
