package checkout

import (
	"time"

	domainMaterial "stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/usecase/stock"
)

type CheckoutInput struct {
	HolderID   uint64
	MaterialID uint64
	Notes      *string
}

type ConsumeInput struct {
	HolderID   uint64
	MaterialID uint64
	Amount     int64
	Notes      *string
}

type WithdrawalDTO struct {
	ID                uint64     `json:"id"`
	HolderID          uint64     `json:"holder_id"`
	MaterialID        uint64     `json:"material_id"`
	Amount            int64      `json:"amount"`
	WithdrawalDate    time.Time  `json:"withdrawal_date"`
	Notes             *string    `json:"notes,omitempty"`
	ReturnDate        *time.Time `json:"return_date,omitempty"`
	EfficientAtReturn *bool      `json:"efficient_at_return,omitempty"`
}

// ConsumeResult reports the withdrawal row together with the per-batch FEFO
// deductions that satisfied it.
type ConsumeResult struct {
	Withdrawal WithdrawalDTO     `json:"withdrawal"`
	Deductions []stock.Deduction `json:"deductions"`
}

// HolderWithdrawalDTO annotates a withdrawal with its material for
// per-holder listings.
type HolderWithdrawalDTO struct {
	Withdrawal   WithdrawalDTO       `json:"withdrawal"`
	MaterialID   uint64              `json:"material_id"`
	Material     string              `json:"material"`
	MaterialType domainMaterial.Type `json:"material_type"`
}

// MaterialWithdrawalDTO annotates a withdrawal with its holder for
// per-material listings and the active-checkout map.
type MaterialWithdrawalDTO struct {
	Withdrawal WithdrawalDTO `json:"withdrawal"`
	HolderID   uint64        `json:"holder_id"`
	Holder     string        `json:"holder"`
	ShortCode  string        `json:"short_code"`
}
