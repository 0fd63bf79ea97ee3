package batch

import (
	"errors"
	"fmt"
	"time"

	"stockroom-backend/internal/domain/material"
)

var ErrNotFound = errors.New("batch not found")

// InsufficientStockError reports a consumption request exceeding the total
// available amount. No deduction takes place when it is returned.
type InsufficientStockError struct {
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available, %d requested", e.Available, e.Requested)
}

// Batch is a lot of a material received together. Amount only decreases after
// creation; replenishment creates new rows. Zero-amount batches are retained
// as history. Equipment batches conventionally carry amount = 1 and record the
// item's storage location.
type Batch struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	MaterialID uint64    `gorm:"column:material_id;not null;index"`
	Expiration time.Time `gorm:"column:expiration;type:date;not null;index"`
	Amount     int64     `gorm:"column:amount;not null"`
	Location   *string   `gorm:"column:location;size:128"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Batch) TableName() string { return "batches" }

// Expiring pairs a near-expiration batch with its material for alert views.
type Expiring struct {
	Batch    Batch
	Material material.Material
}
