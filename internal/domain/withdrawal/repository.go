package withdrawal

import "context"

type Repository interface {
	Create(ctx context.Context, w *Withdrawal) error
	GetByID(ctx context.Context, id uint64) (*Withdrawal, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Withdrawal, error)
	// GetOpenByMaterial returns the material's open checkout, or nil when the
	// material is available.
	GetOpenByMaterial(ctx context.Context, materialID uint64) (*Withdrawal, error)
	// ListOpen returns all open checkouts with their holders.
	ListOpen(ctx context.Context) ([]MaterialItem, error)
	ListByHolder(ctx context.Context, holderID uint64) ([]HolderItem, error)
	ListByMaterial(ctx context.Context, materialID uint64) ([]MaterialItem, error)
	Save(ctx context.Context, w *Withdrawal) error
	CountByHolder(ctx context.Context, holderID uint64) (int64, error)
	CountByMaterial(ctx context.Context, materialID uint64) (int64, error)
	DeleteByHolder(ctx context.Context, holderID uint64) error
	DeleteByMaterial(ctx context.Context, materialID uint64) error
}
