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

type materialRepo struct {
	db *sqlx.DB
}

// NewMaterialRepo creates a new PostgreSQL-backed MaterialRepository.
func NewMaterialRepo(db *sqlx.DB) port.MaterialRepository {
	return &materialRepo{db: db}
}

func (r *materialRepo) Create(ctx context.Context, material *domain.Material) error {
	material.ID = uuid.New()
	now := time.Now().UTC()
	material.CreatedAt = now
	material.UpdatedAt = now

	query := `INSERT INTO materials (id, name, sku, description, category, unit, unit_price, min_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		material.ID, material.Name, material.SKU, material.Description, material.Category,
		material.Unit, material.UnitPrice, material.MinStock, material.CreatedAt, material.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "sku") {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("materialRepo.Create: %w", err)
	}
	return nil
}

func (r *materialRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	var material domain.Material
	err := r.db.GetContext(ctx, &material, "SELECT * FROM materials WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("materialRepo.GetByID: %w", err)
	}
	return &material, nil
}

func (r *materialRepo) GetBySKU(ctx context.Context, sku string) (*domain.Material, error) {
	var material domain.Material
	err := r.db.GetContext(ctx, &material, "SELECT * FROM materials WHERE sku = $1", sku)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("materialRepo.GetBySKU: %w", err)
	}
	return &material, nil
}

const materialWithStockSelect = `SELECT m.*,
	COALESCE(s.quantity, 0) AS current_stock,
	COALESCE(s.location, '') AS stock_location
FROM materials m
LEFT JOIN stock s ON s.material_id = m.id`

func (r *materialRepo) List(ctx context.Context, filter port.MaterialFilter) ([]domain.MaterialWithStock, int, error) {
	conds := []string{}
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(m.name ILIKE $%d OR m.sku ILIKE $%d OR m.description ILIKE $%d)", n, n, n))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("m.category = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM materials m" + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("materialRepo.List count: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf("%s%s ORDER BY m.name LIMIT $%d OFFSET $%d",
		materialWithStockSelect, where, len(args)-1, len(args))

	var materials []domain.MaterialWithStock
	if err := r.db.SelectContext(ctx, &materials, query, args...); err != nil {
		return nil, 0, fmt.Errorf("materialRepo.List: %w", err)
	}
	return materials, total, nil
}

func (r *materialRepo) Update(ctx context.Context, material *domain.Material) error {
	material.UpdatedAt = time.Now().UTC()
	query := `UPDATE materials SET name = $1, sku = $2, description = $3, category = $4,
		unit = $5, unit_price = $6, min_stock = $7, updated_at = $8 WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		material.Name, material.SKU, material.Description, material.Category,
		material.Unit, material.UnitPrice, material.MinStock, material.UpdatedAt, material.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "sku") {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("materialRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *materialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM materials WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("materialRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
