package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"solarops/internal/domain"
	"solarops/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM materials) AS total_materials,
		(SELECT COUNT(*) FROM stock s JOIN materials m ON m.id = s.material_id WHERE s.quantity < m.min_stock) AS low_stock_count,
		(SELECT COUNT(*) FROM projects WHERE status IN ('planned', 'in_progress')) AS active_projects,
		(SELECT COUNT(*) FROM projects) AS total_projects`

	var stats struct {
		TotalMaterials int `db:"total_materials"`
		LowStockCount  int `db:"low_stock_count"`
		ActiveProjects int `db:"active_projects"`
		TotalProjects  int `db:"total_projects"`
	}
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("statsRepo.DashboardStats: %w", err)
	}
	return &domain.DashboardStats{
		TotalMaterials: stats.TotalMaterials,
		LowStockCount:  stats.LowStockCount,
		ActiveProjects: stats.ActiveProjects,
		TotalProjects:  stats.TotalProjects,
	}, nil
}
