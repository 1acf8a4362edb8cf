package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"solarops/internal/domain"
	"solarops/internal/port"
)

type purchaseRepo struct {
	db *sqlx.DB
}

// NewPurchaseRepo creates a new PostgreSQL-backed PurchaseRepository.
func NewPurchaseRepo(db *sqlx.DB) port.PurchaseRepository {
	return &purchaseRepo{db: db}
}

func (r *purchaseRepo) Create(ctx context.Context, purchase *domain.Purchase) error {
	purchase.ID = uuid.New()
	purchase.CreatedAt = time.Now().UTC()
	if purchase.Currency == "" {
		purchase.Currency = domain.DefaultCurrency
	}

	query := `INSERT INTO purchases (id, supplier, purchase_date, invoice_number, total_amount, currency, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		purchase.ID, purchase.Supplier, purchase.PurchaseDate, purchase.InvoiceNumber,
		purchase.TotalAmount, purchase.Currency, purchase.Notes, purchase.CreatedAt)
	if err != nil {
		return fmt.Errorf("purchaseRepo.Create: %w", err)
	}
	return nil
}

func (r *purchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	var purchase domain.Purchase
	err := r.db.GetContext(ctx, &purchase, "SELECT * FROM purchases WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("purchaseRepo.GetByID: %w", err)
	}
	return &purchase, nil
}

func (r *purchaseRepo) List(ctx context.Context, offset, limit int) ([]domain.Purchase, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM purchases"); err != nil {
		return nil, 0, fmt.Errorf("purchaseRepo.List count: %w", err)
	}

	var purchases []domain.Purchase
	query := "SELECT * FROM purchases ORDER BY purchase_date DESC, created_at DESC LIMIT $1 OFFSET $2"
	if err := r.db.SelectContext(ctx, &purchases, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("purchaseRepo.List: %w", err)
	}
	return purchases, total, nil
}

func (r *purchaseRepo) CreateItem(ctx context.Context, item *domain.PurchaseItem) error {
	item.ID = uuid.New()
	query := `INSERT INTO purchase_items (id, purchase_id, material_id, description, sku, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.PurchaseID, item.MaterialID, item.Description, item.SKU,
		item.Quantity, item.UnitPrice, item.TotalPrice)
	if err != nil {
		return fmt.Errorf("purchaseRepo.CreateItem: %w", err)
	}
	return nil
}

func (r *purchaseRepo) ListItems(ctx context.Context, purchaseID uuid.UUID) ([]domain.PurchaseItemDetail, error) {
	query := `SELECT pi.*, m.name AS material_name
	FROM purchase_items pi
	LEFT JOIN materials m ON m.id = pi.material_id
	WHERE pi.purchase_id = $1
	ORDER BY pi.description`

	var items []domain.PurchaseItemDetail
	if err := r.db.SelectContext(ctx, &items, query, purchaseID); err != nil {
		return nil, fmt.Errorf("purchaseRepo.ListItems: %w", err)
	}
	return items, nil
}
