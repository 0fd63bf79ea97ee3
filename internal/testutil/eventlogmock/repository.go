package eventlogmock

import (
	"context"

	domain "stockroom-backend/internal/domain/eventlog"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	AppendFn func(ctx context.Context, e *domain.Event) error
	ListFn   func(ctx context.Context, limit, offset int) ([]domain.Event, error)
}

func (m *Repo) Append(ctx context.Context, e *domain.Event) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	return nil
}
func (m *Repo) List(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}
	return nil, nil
}
