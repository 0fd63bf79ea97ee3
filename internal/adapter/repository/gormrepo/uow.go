package gormrepo

import (
	"context"

	materialDomain "stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func newRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Holders:     &HolderRepository{db: tx},
		Materials:   &MaterialRepository{db: tx},
		Batches:     &BatchRepository{db: tx},
		Withdrawals: &WithdrawalRepository{db: tx},
		Events:      &EventLogRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return translateBusy(u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepos(tx))
	}))
}

func (u *GormUoW) WithinMaterialTx(ctx context.Context, materialID uint64, fn func(r uow.Repos, m *materialDomain.Material) error) error {
	return translateBusy(u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := newRepos(tx)
		// lock the material row up-front to prevent races
		m, err := r.Materials.GetByIDForUpdate(ctx, materialID)
		if err != nil {
			return err
		}
		return fn(r, m)
	}))
}
