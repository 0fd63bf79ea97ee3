package batchmock

import (
	"context"
	"time"

	domain "stockroom-backend/internal/domain/batch"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, b *domain.Batch) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Batch, error)
	ListByMaterialFn   func(ctx context.Context, materialID uint64) ([]domain.Batch, error)
	ListOpenFEFOFn     func(ctx context.Context, materialID uint64) ([]domain.Batch, error)
	ListExpiringFn     func(ctx context.Context, cutoff time.Time, limit int) ([]domain.Expiring, error)
	SaveFn             func(ctx context.Context, b *domain.Batch) error
	TotalStockFn       func(ctx context.Context, materialID uint64) (int64, error)
	TotalStocksFn      func(ctx context.Context) (map[uint64]int64, error)
	CountByMaterialFn  func(ctx context.Context, materialID uint64) (int64, error)
	DeleteByMaterialFn func(ctx context.Context, materialID uint64) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Batch) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Batch, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByMaterial(ctx context.Context, materialID uint64) ([]domain.Batch, error) {
	if m.ListByMaterialFn != nil {
		return m.ListByMaterialFn(ctx, materialID)
	}
	return nil, nil
}
func (m *Repo) ListOpenFEFO(ctx context.Context, materialID uint64) ([]domain.Batch, error) {
	if m.ListOpenFEFOFn != nil {
		return m.ListOpenFEFOFn(ctx, materialID)
	}
	return nil, nil
}
func (m *Repo) ListExpiring(ctx context.Context, cutoff time.Time, limit int) ([]domain.Expiring, error) {
	if m.ListExpiringFn != nil {
		return m.ListExpiringFn(ctx, cutoff, limit)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, b *domain.Batch) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}
func (m *Repo) TotalStock(ctx context.Context, materialID uint64) (int64, error) {
	if m.TotalStockFn != nil {
		return m.TotalStockFn(ctx, materialID)
	}
	return 0, nil
}
func (m *Repo) TotalStocks(ctx context.Context) (map[uint64]int64, error) {
	if m.TotalStocksFn != nil {
		return m.TotalStocksFn(ctx)
	}
	return map[uint64]int64{}, nil
}
func (m *Repo) CountByMaterial(ctx context.Context, materialID uint64) (int64, error) {
	if m.CountByMaterialFn != nil {
		return m.CountByMaterialFn(ctx, materialID)
	}
	return 0, nil
}
func (m *Repo) DeleteByMaterial(ctx context.Context, materialID uint64) error {
	if m.DeleteByMaterialFn != nil {
		return m.DeleteByMaterialFn(ctx, materialID)
	}
	return nil
}
