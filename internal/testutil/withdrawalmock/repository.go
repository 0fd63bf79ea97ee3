package withdrawalmock

import (
	"context"

	domain "stockroom-backend/internal/domain/withdrawal"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, w *domain.Withdrawal) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.Withdrawal, error)
	GetByIDForUpdateFn  func(ctx context.Context, id uint64) (*domain.Withdrawal, error)
	GetOpenByMaterialFn func(ctx context.Context, materialID uint64) (*domain.Withdrawal, error)
	ListOpenFn          func(ctx context.Context) ([]domain.MaterialItem, error)
	ListByHolderFn      func(ctx context.Context, holderID uint64) ([]domain.HolderItem, error)
	ListByMaterialFn    func(ctx context.Context, materialID uint64) ([]domain.MaterialItem, error)
	SaveFn              func(ctx context.Context, w *domain.Withdrawal) error
	CountByHolderFn     func(ctx context.Context, holderID uint64) (int64, error)
	CountByMaterialFn   func(ctx context.Context, materialID uint64) (int64, error)
	DeleteByHolderFn    func(ctx context.Context, holderID uint64) error
	DeleteByMaterialFn  func(ctx context.Context, materialID uint64) error
}

func (m *Repo) Create(ctx context.Context, w *domain.Withdrawal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, w)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Withdrawal, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Withdrawal, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetOpenByMaterial(ctx context.Context, materialID uint64) (*domain.Withdrawal, error) {
	if m.GetOpenByMaterialFn != nil {
		return m.GetOpenByMaterialFn(ctx, materialID)
	}
	return nil, nil
}
func (m *Repo) ListOpen(ctx context.Context) ([]domain.MaterialItem, error) {
	if m.ListOpenFn != nil {
		return m.ListOpenFn(ctx)
	}
	return nil, nil
}
func (m *Repo) ListByHolder(ctx context.Context, holderID uint64) ([]domain.HolderItem, error) {
	if m.ListByHolderFn != nil {
		return m.ListByHolderFn(ctx, holderID)
	}
	return nil, nil
}
func (m *Repo) ListByMaterial(ctx context.Context, materialID uint64) ([]domain.MaterialItem, error) {
	if m.ListByMaterialFn != nil {
		return m.ListByMaterialFn(ctx, materialID)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, w *domain.Withdrawal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, w)
	}
	return nil
}
func (m *Repo) CountByHolder(ctx context.Context, holderID uint64) (int64, error) {
	if m.CountByHolderFn != nil {
		return m.CountByHolderFn(ctx, holderID)
	}
	return 0, nil
}
func (m *Repo) CountByMaterial(ctx context.Context, materialID uint64) (int64, error) {
	if m.CountByMaterialFn != nil {
		return m.CountByMaterialFn(ctx, materialID)
	}
	return 0, nil
}
func (m *Repo) DeleteByHolder(ctx context.Context, holderID uint64) error {
	if m.DeleteByHolderFn != nil {
		return m.DeleteByHolderFn(ctx, holderID)
	}
	return nil
}
func (m *Repo) DeleteByMaterial(ctx context.Context, materialID uint64) error {
	if m.DeleteByMaterialFn != nil {
		return m.DeleteByMaterialFn(ctx, materialID)
	}
	return nil
}
