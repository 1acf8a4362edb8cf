package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"solarops/internal/domain"
	"solarops/internal/port"
)

// MockProjectRepo is a mock implementation of port.ProjectRepository.
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context, filter port.ProjectFilter) ([]domain.Project, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Project), args.Int(1), args.Error(2)
}

func (m *MockProjectRepo) Update(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepo) ListMaterials(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMaterialDetail, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectMaterialDetail), args.Error(1)
}

func (m *MockProjectRepo) AddMaterial(ctx context.Context, pm *domain.ProjectMaterial) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockProjectRepo) UpdateMaterial(ctx context.Context, pm *domain.ProjectMaterial) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockProjectRepo) RemoveMaterial(ctx context.Context, projectID, materialID uuid.UUID) error {
	args := m.Called(ctx, projectID, materialID)
	return args.Error(0)
}
