package holder

import "context"

type Repository interface {
	Create(ctx context.Context, h *Holder) error
	GetByID(ctx context.Context, id uint64) (*Holder, error)
	// ListShortCodesByPrefix returns every short code starting with prefix,
	// taken or historical, for the allocator's probing scan.
	ListShortCodesByPrefix(ctx context.Context, prefix string) ([]string, error)
	List(ctx context.Context) ([]Holder, error)
	Save(ctx context.Context, h *Holder) error
	Delete(ctx context.Context, id uint64) error
}
