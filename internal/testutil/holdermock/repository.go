package holdermock

import (
	"context"

	domain "stockroom-backend/internal/domain/holder"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                 func(ctx context.Context, h *domain.Holder) error
	GetByIDFn                func(ctx context.Context, id uint64) (*domain.Holder, error)
	ListShortCodesByPrefixFn func(ctx context.Context, prefix string) ([]string, error)
	ListFn                   func(ctx context.Context) ([]domain.Holder, error)
	SaveFn                   func(ctx context.Context, h *domain.Holder) error
	DeleteFn                 func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, h *domain.Holder) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, h)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Holder, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListShortCodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	if m.ListShortCodesByPrefixFn != nil {
		return m.ListShortCodesByPrefixFn(ctx, prefix)
	}
	return nil, nil
}
func (m *Repo) List(ctx context.Context) ([]domain.Holder, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, h *domain.Holder) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, h)
	}
	return nil
}
func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
