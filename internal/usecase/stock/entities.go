package stock

import (
	"time"

	domainMaterial "stockroom-backend/internal/domain/material"
)

type AddBatchInput struct {
	MaterialID uint64
	Expiration time.Time
	Amount     int64
	Location   *string
}

type BatchDTO struct {
	ID         uint64    `json:"id"`
	MaterialID uint64    `json:"material_id"`
	Expiration time.Time `json:"expiration"`
	Amount     int64     `json:"amount"`
	Location   *string   `json:"location,omitempty"`
}

// Deduction records how much a single FEFO walk took from one batch.
type Deduction struct {
	BatchID  uint64 `json:"batch_id"`
	Deducted int64  `json:"deducted"`
}

// ExpiringDTO is a near-expiration lot with its material and the material's
// total availability for display.
type ExpiringDTO struct {
	Batch      BatchDTO            `json:"batch"`
	MaterialID uint64              `json:"material_id"`
	Material   string              `json:"material"`
	Type       domainMaterial.Type `json:"type"`
	TotalStock int64               `json:"total_stock"`
}

// LowStockDTO is a consumable at or below its reorder threshold.
type LowStockDTO struct {
	MaterialID   uint64 `json:"material_id"`
	Denomination string `json:"denomination"`
	MinStock     int64  `json:"min_stock"`
	TotalStock   int64  `json:"total_stock"`
}
