package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"solarops/internal/domain"
)

// MockPurchaseRepo is a mock implementation of port.PurchaseRepository.
type MockPurchaseRepo struct {
	mock.Mock
}

func (m *MockPurchaseRepo) Create(ctx context.Context, purchase *domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepo) List(ctx context.Context, offset, limit int) ([]domain.Purchase, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Purchase), args.Int(1), args.Error(2)
}

func (m *MockPurchaseRepo) CreateItem(ctx context.Context, item *domain.PurchaseItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPurchaseRepo) ListItems(ctx context.Context, purchaseID uuid.UUID) ([]domain.PurchaseItemDetail, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseItemDetail), args.Error(1)
}
