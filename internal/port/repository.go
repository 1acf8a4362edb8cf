package port

import (
	"context"

	"github.com/google/uuid"

	"solarops/internal/domain"
)

// MaterialFilter narrows material listings.
type MaterialFilter struct {
	Search   string
	Category domain.MaterialCategory
	Offset   int
	Limit    int
}

// MaterialRepository defines the contract for material persistence.
type MaterialRepository interface {
	Create(ctx context.Context, material *domain.Material) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Material, error)
	List(ctx context.Context, filter MaterialFilter) ([]domain.MaterialWithStock, int, error)
	Update(ctx context.Context, material *domain.Material) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MovementFilter narrows stock movement listings.
type MovementFilter struct {
	MaterialID   *uuid.UUID
	MovementType domain.MovementType
	Offset       int
	Limit        int
}

// StockRepository defines the contract for stock level persistence.
type StockRepository interface {
	CreateForMaterial(ctx context.Context, materialID uuid.UUID, location string) error
	GetByMaterial(ctx context.Context, materialID uuid.UUID) (*domain.Stock, error)
	List(ctx context.Context, offset, limit int) ([]domain.StockLevel, int, error)
	ListLow(ctx context.Context) ([]domain.StockLevel, error)
	UpdateQuantity(ctx context.Context, stock *domain.Stock) error
	DeleteByMaterial(ctx context.Context, materialID uuid.UUID) error
	RecordMovement(ctx context.Context, movement *domain.StockMovement) error
	ListMovements(ctx context.Context, filter MovementFilter) ([]domain.StockMovementDetail, int, error)
}

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Status domain.ProjectStatus
	Search string
	Offset int
	Limit  int
}

// ProjectRepository defines the contract for project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, int, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListMaterials(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMaterialDetail, error)
	AddMaterial(ctx context.Context, pm *domain.ProjectMaterial) error
	UpdateMaterial(ctx context.Context, pm *domain.ProjectMaterial) error
	RemoveMaterial(ctx context.Context, projectID, materialID uuid.UUID) error
}

// PurchaseRepository defines the contract for purchase persistence.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error)
	List(ctx context.Context, offset, limit int) ([]domain.Purchase, int, error)
	CreateItem(ctx context.Context, item *domain.PurchaseItem) error
	ListItems(ctx context.Context, purchaseID uuid.UUID) ([]domain.PurchaseItemDetail, error)
}

// InvoiceRepository defines the contract for invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
}

// StatsRepository aggregates dashboard statistics.
type StatsRepository interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
