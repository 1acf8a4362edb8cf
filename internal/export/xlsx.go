// Package export builds XLSX workbooks for inventory downloads.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"solarops/internal/domain"
)

const sheet = "Inventory"

var headers = []string{
	"Name",
	"SKU",
	"Category",
	"Unit",
	"Unit Price",
	"Min Stock",
	"Current Stock",
	"Location",
	"Low Stock",
}

// MaterialsXLSX returns an XLSX workbook (as bytes) listing the material
// catalog with current stock levels.
func MaterialsXLSX(materials []domain.MaterialWithStock) ([]byte, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for i := range materials {
		m := &materials[i]
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, m.Name)
		write(2, m.SKU)
		write(3, string(m.Category))
		write(4, m.Unit)
		write(5, m.UnitPrice)
		write(6, m.MinStock)
		write(7, m.CurrentStock)
		write(8, m.StockLocation)
		if m.CurrentStock < m.MinStock {
			write(9, "Yes")
		} else {
			write(9, "No")
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "B", 18)
	_ = f.SetColWidth(sheet, "C", "D", 12)
	_ = f.SetColWidth(sheet, "E", "G", 14)
	_ = f.SetColWidth(sheet, "H", "H", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// StockMovementsXLSX returns an XLSX workbook listing stock movements.
func StockMovementsXLSX(movements []domain.StockMovementDetail) ([]byte, error) {
	const movementSheet = "Movements"

	f := excelize.NewFile()
	index, err := f.NewSheet(movementSheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	movementHeaders := []string{"Date", "Material", "SKU", "Type", "Quantity", "Reference", "Notes"}
	for i, h := range movementHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(movementSheet, cell, h)
	}

	row := 2
	for i := range movements {
		mv := &movements[i]
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(movementSheet, cell, v)
		}
		write(1, mv.CreatedAt.Format(time.RFC3339))
		write(2, mv.MaterialName)
		write(3, mv.MaterialSKU)
		write(4, string(mv.MovementType))
		write(5, mv.Quantity)
		write(6, string(mv.ReferenceType))
		write(7, mv.Notes)
		row++
	}

	_ = f.SetColWidth(movementSheet, "A", "A", 22)
	_ = f.SetColWidth(movementSheet, "B", "B", 32)
	_ = f.SetColWidth(movementSheet, "C", "C", 18)
	_ = f.SetColWidth(movementSheet, "G", "G", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
