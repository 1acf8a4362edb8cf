package service

import (
	"context"
	"io"

	"solarops/internal/csvexport"
	"solarops/internal/export"
	"solarops/internal/port"
)

// exportBatchSize bounds memory while paging through the catalog.
const exportBatchSize = 500

// ExportService streams inventory exports.
type ExportService interface {
	MaterialsCSV(ctx context.Context, w io.Writer) error
	MaterialsXLSX(ctx context.Context) ([]byte, error)
	MovementsXLSX(ctx context.Context) ([]byte, error)
}

type exportService struct {
	materials port.MaterialRepository
	stock     port.StockRepository
}

// NewExportService creates a new ExportService implementation.
func NewExportService(materials port.MaterialRepository, stock port.StockRepository) ExportService {
	return &exportService{materials: materials, stock: stock}
}

// MaterialsCSV writes a BOM-prefixed CSV of the catalog with stock levels,
// paging through the repository in batches.
func (s *exportService) MaterialsCSV(ctx context.Context, w io.Writer) error {
	if _, err := w.Write(csvexport.BOM); err != nil {
		return err
	}

	writer := csvexport.NewWriter(w)
	if err := writer.WriteHeader(); err != nil {
		return err
	}

	offset := 0
	for {
		batch, _, err := s.materials.List(ctx, port.MaterialFilter{Offset: offset, Limit: exportBatchSize})
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			break
		}
		if err := writer.WriteMaterials(batch); err != nil {
			return err
		}
		if len(batch) < exportBatchSize {
			break
		}
		offset += exportBatchSize
	}

	writer.Flush()
	return writer.Error()
}

func (s *exportService) MaterialsXLSX(ctx context.Context) ([]byte, error) {
	materials, _, err := s.materials.List(ctx, port.MaterialFilter{Limit: exportBatchSize})
	if err != nil {
		return nil, err
	}
	return export.MaterialsXLSX(materials)
}

func (s *exportService) MovementsXLSX(ctx context.Context) ([]byte, error) {
	movements, _, err := s.stock.ListMovements(ctx, port.MovementFilter{Limit: exportBatchSize})
	if err != nil {
		return nil, err
	}
	return export.StockMovementsXLSX(movements)
}
