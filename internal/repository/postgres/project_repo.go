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

type projectRepo struct {
	db *sqlx.DB
}

// NewProjectRepo creates a new PostgreSQL-backed ProjectRepository.
func NewProjectRepo(db *sqlx.DB) port.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	project.ID = uuid.New()
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	query := `INSERT INTO projects (id, name, client_name, client_contact, location, capacity_kw,
		status, start_date, end_date, estimated_cost, actual_cost, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.Name, project.ClientName, project.ClientContact, project.Location,
		project.CapacityKW, project.Status, project.StartDate, project.EndDate,
		project.EstimatedCost, project.ActualCost, project.Notes, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("projectRepo.Create: %w", err)
	}
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.GetContext(ctx, &project, "SELECT * FROM projects WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("projectRepo.GetByID: %w", err)
	}
	return &project, nil
}

func (r *projectRepo) List(ctx context.Context, filter port.ProjectFilter) ([]domain.Project, int, error) {
	conds := []string{}
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR client_name ILIKE $%d OR location ILIKE $%d)", n, n, n))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM projects"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("projectRepo.List count: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf("SELECT * FROM projects%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args))

	var projects []domain.Project
	if err := r.db.SelectContext(ctx, &projects, query, args...); err != nil {
		return nil, 0, fmt.Errorf("projectRepo.List: %w", err)
	}
	return projects, total, nil
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	project.UpdatedAt = time.Now().UTC()
	query := `UPDATE projects SET name = $1, client_name = $2, client_contact = $3, location = $4,
		capacity_kw = $5, status = $6, start_date = $7, end_date = $8, estimated_cost = $9,
		actual_cost = $10, notes = $11, updated_at = $12 WHERE id = $13`
	result, err := r.db.ExecContext(ctx, query,
		project.Name, project.ClientName, project.ClientContact, project.Location,
		project.CapacityKW, project.Status, project.StartDate, project.EndDate,
		project.EstimatedCost, project.ActualCost, project.Notes, project.UpdatedAt, project.ID)
	if err != nil {
		return fmt.Errorf("projectRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("projectRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) ListMaterials(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectMaterialDetail, error) {
	query := `SELECT pm.*,
		m.name AS material_name,
		m.sku AS material_sku,
		m.unit AS material_unit
	FROM project_materials pm
	JOIN materials m ON m.id = pm.material_id
	WHERE pm.project_id = $1
	ORDER BY m.name`

	var details []domain.ProjectMaterialDetail
	if err := r.db.SelectContext(ctx, &details, query, projectID); err != nil {
		return nil, fmt.Errorf("projectRepo.ListMaterials: %w", err)
	}
	return details, nil
}

func (r *projectRepo) AddMaterial(ctx context.Context, pm *domain.ProjectMaterial) error {
	pm.ID = uuid.New()
	query := `INSERT INTO project_materials (id, project_id, material_id, quantity_planned, quantity_used, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		pm.ID, pm.ProjectID, pm.MaterialID, pm.QuantityPlanned, pm.QuantityUsed, pm.UnitPrice)
	if err != nil {
		return fmt.Errorf("projectRepo.AddMaterial: %w", err)
	}
	return nil
}

func (r *projectRepo) UpdateMaterial(ctx context.Context, pm *domain.ProjectMaterial) error {
	query := `UPDATE project_materials SET quantity_planned = $1, quantity_used = $2, unit_price = $3
		WHERE project_id = $4 AND material_id = $5`
	result, err := r.db.ExecContext(ctx, query,
		pm.QuantityPlanned, pm.QuantityUsed, pm.UnitPrice, pm.ProjectID, pm.MaterialID)
	if err != nil {
		return fmt.Errorf("projectRepo.UpdateMaterial: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) RemoveMaterial(ctx context.Context, projectID, materialID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM project_materials WHERE project_id = $1 AND material_id = $2", projectID, materialID)
	if err != nil {
		return fmt.Errorf("projectRepo.RemoveMaterial: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
