package material

import (
	"time"

	domainMaterial "stockroom-backend/internal/domain/material"
)

type InitialBatchInput struct {
	Expiration time.Time
	Amount     int64
	Location   *string
}

type CreateMaterialInput struct {
	Type         domainMaterial.Type
	Denomination string
	NDC          *string
	PartNumber   *string
	SerialNumber *string
	Code         *string
	ImagePath    *string
	MinStock     *int64
	// Optional first lot stocked in together with the catalog entry.
	InitialBatch *InitialBatchInput
}

// UpdateMaterialInput carries partial updates; nil fields are left untouched.
// Location updates the equipment item's storage-location batch.
type UpdateMaterialInput struct {
	Denomination *string
	NDC          *string
	PartNumber   *string
	SerialNumber *string
	Code         *string
	ImagePath    *string
	MinStock     *int64
	Location     *string
}

type MaterialDTO struct {
	ID           uint64              `json:"id"`
	Type         domainMaterial.Type `json:"type"`
	Denomination string              `json:"denomination"`
	NDC          *string             `json:"ndc,omitempty"`
	PartNumber   *string             `json:"part_number,omitempty"`
	SerialNumber *string             `json:"serial_number,omitempty"`
	Code         *string             `json:"code,omitempty"`
	ImagePath    *string             `json:"image_path,omitempty"`
	IsEfficient  bool                `json:"is_efficient"`
	MinStock     int64               `json:"min_stock"`
	CreatedAt    time.Time           `json:"created_at"`
}

type DependencyCount struct {
	Batches     int64 `json:"batches"`
	Withdrawals int64 `json:"withdrawals"`
}
