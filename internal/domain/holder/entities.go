package holder

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("holder not found")

// ErrShortCodeTaken surfaces a unique-index violation on short_code so the
// allocator can re-probe instead of failing the registration outright.
var ErrShortCodeTaken = errors.New("short code already taken")

// Holder is a person who can take custody of stock.
type Holder struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Generated from name initials plus a disambiguating counter ("MR1").
	ShortCode string  `gorm:"column:short_code;size:16;not null;uniqueIndex:ux_holders_short_code"`
	Title     *string `gorm:"column:title;size:64"`
	FirstName string  `gorm:"column:first_name;size:128;not null"`
	LastName  string  `gorm:"column:last_name;size:128;not null"`
	Workplace *string `gorm:"column:workplace;size:128"`
	Mobile    *string `gorm:"column:mobile;size:32"`
	Email     *string `gorm:"column:email;size:128"`
	// Barcode-style external code; defaults to ShortCode when not supplied.
	Code      string    `gorm:"column:code;size:64;not null"`
	Notes     *string   `gorm:"column:notes;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Holder) TableName() string { return "holders" }
