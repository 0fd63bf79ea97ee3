package materialmock

import (
	"context"

	domain "stockroom-backend/internal/domain/material"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, m *domain.Material) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Material, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.Material, error)
	ListFn                 func(ctx context.Context, t *domain.Type) ([]domain.Material, error)
	ListDamagedEquipmentFn func(ctx context.Context) ([]domain.Material, error)
	SaveFn                 func(ctx context.Context, m *domain.Material) error
	DeleteFn               func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, mat *domain.Material) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mat)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Material, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Material, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) List(ctx context.Context, t *domain.Type) ([]domain.Material, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, t)
	}
	return nil, nil
}
func (m *Repo) ListDamagedEquipment(ctx context.Context) ([]domain.Material, error) {
	if m.ListDamagedEquipmentFn != nil {
		return m.ListDamagedEquipmentFn(ctx)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, mat *domain.Material) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, mat)
	}
	return nil
}
func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
