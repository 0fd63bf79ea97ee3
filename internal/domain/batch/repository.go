package batch

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, b *Batch) error
	GetByID(ctx context.Context, id uint64) (*Batch, error)
	// ListByMaterial returns every batch of the material, zero amounts
	// included, ascending by expiration.
	ListByMaterial(ctx context.Context, materialID uint64) ([]Batch, error)
	// ListOpenFEFO returns batches with amount > 0 ascending by expiration,
	// expired lots first, for the consumption walk.
	ListOpenFEFO(ctx context.Context, materialID uint64) ([]Batch, error)
	// ListExpiring returns open consumable batches expiring on or before the
	// cutoff, most urgent first.
	ListExpiring(ctx context.Context, cutoff time.Time, limit int) ([]Expiring, error)
	Save(ctx context.Context, b *Batch) error
	// TotalStock sums amount over all batches of the material; batch amounts
	// are already net of prior deductions, so this is the authoritative
	// quantity on hand.
	TotalStock(ctx context.Context, materialID uint64) (int64, error)
	TotalStocks(ctx context.Context) (map[uint64]int64, error)
	CountByMaterial(ctx context.Context, materialID uint64) (int64, error)
	DeleteByMaterial(ctx context.Context, materialID uint64) error
}
