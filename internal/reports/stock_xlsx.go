// Package reports renders stockroom state into downloadable workbooks.
package reports

import (
	"bytes"
	"context"

	"github.com/xuri/excelize/v2"

	domainMaterial "stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/usecase/dashboard"
	"stockroom-backend/internal/usecase/stock"
)

const (
	sheetConsumables = "Consumables"
	sheetEquipment   = "Equipment"
)

type Builder struct {
	materialRepo domainMaterial.Repository
	stockUC      *stock.Usecase
	dashboardUC  *dashboard.Usecase
}

func NewBuilder(materials domainMaterial.Repository, stockUC *stock.Usecase, dashboardUC *dashboard.Usecase) *Builder {
	return &Builder{materialRepo: materials, stockUC: stockUC, dashboardUC: dashboardUC}
}

// StockWorkbook builds a two-sheet workbook: consumable totals against their
// reorder thresholds, and the equipment availability partition.
func (b *Builder) StockWorkbook(ctx context.Context) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := b.writeConsumables(ctx, f); err != nil {
		return nil, err
	}
	if err := b.writeEquipment(ctx, f); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *Builder) writeConsumables(ctx context.Context, f *excelize.File) error {
	// Reuse the default sheet for the first panel
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, sheetConsumables); err != nil {
		return err
	}

	t := domainMaterial.TypeConsumable
	materials, err := b.materialRepo.List(ctx, &t)
	if err != nil {
		return err
	}
	totals, err := b.stockUC.TotalStocks(ctx)
	if err != nil {
		return err
	}

	header := []interface{}{"material_id", "denomination", "ndc", "min_stock", "total_stock", "low_stock"}
	if err := f.SetSheetRow(sheetConsumables, "A1", &header); err != nil {
		return err
	}

	row := 2
	for _, m := range materials {
		total := totals[m.ID]
		excelRow := []interface{}{
			m.ID,
			m.Denomination,
			deref(m.NDC),
			m.MinStock,
			total,
			m.MinStock > 0 && total <= m.MinStock,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetConsumables, cell, &excelRow); err != nil {
			return err
		}
		row++
	}
	return nil
}

func (b *Builder) writeEquipment(ctx context.Context, f *excelize.File) error {
	if _, err := f.NewSheet(sheetEquipment); err != nil {
		return err
	}

	equipment, err := b.dashboardUC.Availability(ctx)
	if err != nil {
		return err
	}

	header := []interface{}{"material_id", "denomination", "state", "is_efficient", "holder"}
	if err := f.SetSheetRow(sheetEquipment, "A1", &header); err != nil {
		return err
	}

	row := 2
	for _, e := range equipment {
		excelRow := []interface{}{
			e.MaterialID,
			e.Denomination,
			string(e.State),
			e.IsEfficient,
			deref(e.Holder),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetEquipment, cell, &excelRow); err != nil {
			return err
		}
		row++
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
