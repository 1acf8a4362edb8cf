package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"solarops/internal/domain"
	"solarops/internal/port"
)

type stockRepo struct {
	db *sqlx.DB
}

// NewStockRepo creates a new PostgreSQL-backed StockRepository.
func NewStockRepo(db *sqlx.DB) port.StockRepository {
	return &stockRepo{db: db}
}

func (r *stockRepo) CreateForMaterial(ctx context.Context, materialID uuid.UUID, location string) error {
	if location == "" {
		location = domain.DefaultLocation
	}
	query := `INSERT INTO stock (id, material_id, quantity, location, updated_at)
		VALUES ($1, $2, 0, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, uuid.New(), materialID, location, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("stockRepo.CreateForMaterial: %w", err)
	}
	return nil
}

func (r *stockRepo) GetByMaterial(ctx context.Context, materialID uuid.UUID) (*domain.Stock, error) {
	var stock domain.Stock
	err := r.db.GetContext(ctx, &stock, "SELECT * FROM stock WHERE material_id = $1", materialID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("stockRepo.GetByMaterial: %w", err)
	}
	return &stock, nil
}

const stockLevelSelect = `SELECT s.*,
	m.name AS material_name,
	m.sku AS material_sku,
	m.category AS material_category,
	m.min_stock AS min_stock,
	(s.quantity < m.min_stock) AS is_low
FROM stock s
JOIN materials m ON m.id = s.material_id`

func (r *stockRepo) List(ctx context.Context, offset, limit int) ([]domain.StockLevel, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM stock"); err != nil {
		return nil, 0, fmt.Errorf("stockRepo.List count: %w", err)
	}

	var levels []domain.StockLevel
	query := stockLevelSelect + " ORDER BY m.name LIMIT $1 OFFSET $2"
	if err := r.db.SelectContext(ctx, &levels, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("stockRepo.List: %w", err)
	}
	return levels, total, nil
}

func (r *stockRepo) ListLow(ctx context.Context) ([]domain.StockLevel, error) {
	query := `SELECT s.*,
		m.name AS material_name,
		m.sku AS material_sku,
		m.category AS material_category,
		m.min_stock AS min_stock,
		TRUE AS is_low,
		(m.min_stock - s.quantity) AS shortage
	FROM stock s
	JOIN materials m ON m.id = s.material_id
	WHERE s.quantity < m.min_stock
	ORDER BY m.name`

	var levels []domain.StockLevel
	if err := r.db.SelectContext(ctx, &levels, query); err != nil {
		return nil, fmt.Errorf("stockRepo.ListLow: %w", err)
	}
	return levels, nil
}

func (r *stockRepo) UpdateQuantity(ctx context.Context, stock *domain.Stock) error {
	stock.UpdatedAt = time.Now().UTC()
	query := `UPDATE stock SET quantity = $1, location = $2, updated_at = $3 WHERE material_id = $4`
	result, err := r.db.ExecContext(ctx, query, stock.Quantity, stock.Location, stock.UpdatedAt, stock.MaterialID)
	if err != nil {
		return fmt.Errorf("stockRepo.UpdateQuantity: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *stockRepo) DeleteByMaterial(ctx context.Context, materialID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM stock WHERE material_id = $1", materialID)
	if err != nil {
		return fmt.Errorf("stockRepo.DeleteByMaterial: %w", err)
	}
	return nil
}

func (r *stockRepo) RecordMovement(ctx context.Context, movement *domain.StockMovement) error {
	movement.ID = uuid.New()
	movement.CreatedAt = time.Now().UTC()

	query := `INSERT INTO stock_movements (id, material_id, movement_type, quantity, reference_type, reference_id, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		movement.ID, movement.MaterialID, movement.MovementType, movement.Quantity,
		movement.ReferenceType, movement.ReferenceID, movement.Notes, movement.CreatedAt, movement.CreatedBy)
	if err != nil {
		return fmt.Errorf("stockRepo.RecordMovement: %w", err)
	}
	return nil
}

func (r *stockRepo) ListMovements(ctx context.Context, filter port.MovementFilter) ([]domain.StockMovementDetail, int, error) {
	conds := []string{}
	args := []interface{}{}

	if filter.MaterialID != nil {
		args = append(args, *filter.MaterialID)
		conds = append(conds, fmt.Sprintf("sm.material_id = $%d", len(args)))
	}
	if filter.MovementType != "" {
		args = append(args, filter.MovementType)
		conds = append(conds, fmt.Sprintf("sm.movement_type = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM stock_movements sm"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("stockRepo.ListMovements count: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT sm.*,
		m.name AS material_name,
		m.sku AS material_sku
	FROM stock_movements sm
	JOIN materials m ON m.id = sm.material_id%s
	ORDER BY sm.created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	var movements []domain.StockMovementDetail
	if err := r.db.SelectContext(ctx, &movements, query, args...); err != nil {
		return nil, 0, fmt.Errorf("stockRepo.ListMovements: %w", err)
	}
	return movements, total, nil
}
