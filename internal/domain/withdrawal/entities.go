package withdrawal

import (
	"errors"
	"time"

	"stockroom-backend/internal/domain/holder"
	"stockroom-backend/internal/domain/material"
)

var (
	ErrNotFound = errors.New("withdrawal not found")
	// ErrAlreadyCheckedOut guards the single-active-holder invariant: at most
	// one withdrawal with a null return date may exist per equipment material.
	ErrAlreadyCheckedOut = errors.New("equipment already checked out")
	// ErrAlreadyReturned rejects a second return of the same withdrawal; the
	// return fields are set exactly once.
	ErrAlreadyReturned = errors.New("withdrawal already returned")
)

// Withdrawal records a holder taking stock. For consumables it is a permanent
// consumption event; for equipment it doubles as the checkout record, open
// while ReturnDate is null.
type Withdrawal struct {
	ID                uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	HolderID          uint64     `gorm:"column:holder_id;not null;index"`
	MaterialID        uint64     `gorm:"column:material_id;not null;index"`
	Amount            int64      `gorm:"column:amount;not null"`
	WithdrawalDate    time.Time  `gorm:"column:withdrawal_date;not null"`
	Notes             *string    `gorm:"column:notes;type:text"`
	ReturnDate        *time.Time `gorm:"column:return_date"`
	EfficientAtReturn *bool      `gorm:"column:efficient_at_return"`
}

func (Withdrawal) TableName() string { return "withdrawals" }

// Open reports whether this is an equipment checkout still out.
func (w *Withdrawal) Open() bool { return w.ReturnDate == nil }

// HolderItem pairs a withdrawal with its material for per-holder listings.
type HolderItem struct {
	Withdrawal Withdrawal
	Material   material.Material
}

// MaterialItem pairs a withdrawal with its holder for per-material listings.
type MaterialItem struct {
	Withdrawal Withdrawal
	Holder     holder.Holder
}
