package dashboard

import (
	"stockroom-backend/internal/usecase/stock"
)

type EquipmentState string

const (
	StateAvailable  EquipmentState = "available"
	StateDamaged    EquipmentState = "damaged"
	StateCheckedOut EquipmentState = "checked_out"
)

// DamagedDTO is a damaged equipment item, annotated with the current holder
// when it is also checked out.
type DamagedDTO struct {
	MaterialID   uint64  `json:"material_id"`
	Denomination string  `json:"denomination"`
	PartNumber   *string `json:"part_number,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Holder       *string `json:"holder,omitempty"`
	ShortCode    *string `json:"short_code,omitempty"`
}

// EquipmentDTO is one equipment item in the availability partition. Every
// item lands in exactly one state.
type EquipmentDTO struct {
	MaterialID   uint64         `json:"material_id"`
	Denomination string         `json:"denomination"`
	State        EquipmentState `json:"state"`
	IsEfficient  bool           `json:"is_efficient"`
	Holder       *string        `json:"holder,omitempty"`
}

// Overview bundles every dashboard panel in one read.
type Overview struct {
	LowStock     []stock.LowStockDTO `json:"low_stock"`
	ExpiringLots []stock.ExpiringDTO `json:"expiring_lots"`
	Damaged      []DamagedDTO        `json:"damaged_equipment"`
	Equipment    []EquipmentDTO      `json:"equipment"`
}
