package material

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("material not found")

type Type string

const (
	TypeConsumable Type = "consumable"
	TypeEquipment  Type = "equipment"
)

func (t Type) Valid() bool { return t == TypeConsumable || t == TypeEquipment }

// Material is a catalog entry: either a consumable supply tracked in batches,
// or a serialized piece of equipment subject to the checkout lifecycle.
type Material struct {
	ID           uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	Type         Type    `gorm:"column:material_type;size:16;not null;index"`
	Denomination string  `gorm:"column:denomination;size:255;not null"`
	NDC          *string `gorm:"column:ndc;size:64"`
	PartNumber   *string `gorm:"column:part_number;size:64"`
	SerialNumber *string `gorm:"column:serial_number;size:64"`
	Code         *string `gorm:"column:code;size:64"`
	ImagePath    *string `gorm:"column:image_path;size:255"`
	// Equipment only: reflects the most recent return outcome, true until a
	// return marks the item damaged.
	IsEfficient bool `gorm:"column:is_efficient;not null;default:true"`
	// Consumables only: reorder threshold, 0 disables low-stock alerting.
	MinStock  int64     `gorm:"column:min_stock;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Material) TableName() string { return "materials" }
