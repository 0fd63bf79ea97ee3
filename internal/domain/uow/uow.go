package uow

import (
	"context"

	"stockroom-backend/internal/domain/batch"
	"stockroom-backend/internal/domain/eventlog"
	"stockroom-backend/internal/domain/holder"
	"stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/domain/withdrawal"
)

type Repos struct {
	Holders     holder.Repository
	Materials   material.Repository
	Batches     batch.Repository
	Withdrawals withdrawal.Repository
	Events      eventlog.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the material row first, then pass it in. Consumption
	// and checkout both serialize on this lock, so two concurrent callers can
	// never both observe "available" before either commits.
	WithinMaterialTx(ctx context.Context, materialID uint64, fn func(r Repos, m *material.Material) error) error
}
