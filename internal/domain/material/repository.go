package material

import "context"

type Repository interface {
	Create(ctx context.Context, m *Material) error
	GetByID(ctx context.Context, id uint64) (*Material, error)
	// GetByIDForUpdate locks the material row for the rest of the enclosing
	// transaction; every consume/checkout sequence serializes on it.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Material, error)
	// List returns all materials, or only those of the given type when t is
	// non-nil, ordered by denomination.
	List(ctx context.Context, t *Type) ([]Material, error)
	// ListDamagedEquipment returns equipment with is_efficient = false.
	ListDamagedEquipment(ctx context.Context) ([]Material, error)
	Save(ctx context.Context, m *Material) error
	Delete(ctx context.Context, id uint64) error
}
