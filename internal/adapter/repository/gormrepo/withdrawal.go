package gormrepo

import (
	"context"
	"errors"

	holderDomain "stockroom-backend/internal/domain/holder"
	materialDomain "stockroom-backend/internal/domain/material"
	withdrawalDomain "stockroom-backend/internal/domain/withdrawal"

	"gorm.io/gorm"
)

type WithdrawalRepository struct{ db *gorm.DB }

func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

func (r *WithdrawalRepository) Create(ctx context.Context, w *withdrawalDomain.Withdrawal) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WithdrawalRepository) get(ctx context.Context, db *gorm.DB, id uint64) (*withdrawalDomain.Withdrawal, error) {
	var out withdrawalDomain.Withdrawal
	res := db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, withdrawalDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *WithdrawalRepository) GetByID(ctx context.Context, id uint64) (*withdrawalDomain.Withdrawal, error) {
	return r.get(ctx, r.db, id)
}

func (r *WithdrawalRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*withdrawalDomain.Withdrawal, error) {
	return r.get(ctx, forUpdate(r.db), id)
}

func (r *WithdrawalRepository) GetOpenByMaterial(ctx context.Context, materialID uint64) (*withdrawalDomain.Withdrawal, error) {
	var out withdrawalDomain.Withdrawal
	res := r.db.WithContext(ctx).
		Where("material_id = ? AND return_date IS NULL", materialID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *WithdrawalRepository) ListOpen(ctx context.Context) ([]withdrawalDomain.MaterialItem, error) {
	var ws []withdrawalDomain.Withdrawal
	err := r.db.WithContext(ctx).
		Where("return_date IS NULL").
		Order("withdrawal_date DESC, id DESC").
		Find(&ws).Error
	if err != nil {
		return nil, err
	}
	return r.withHolders(ctx, ws)
}

func (r *WithdrawalRepository) ListByHolder(ctx context.Context, holderID uint64) ([]withdrawalDomain.HolderItem, error) {
	var ws []withdrawalDomain.Withdrawal
	err := r.db.WithContext(ctx).
		Where("holder_id = ?", holderID).
		Order("withdrawal_date DESC, id DESC").
		Find(&ws).Error
	if err != nil {
		return nil, err
	}
	if len(ws) == 0 {
		return nil, nil
	}

	ids := make([]uint64, 0, len(ws))
	for _, w := range ws {
		ids = append(ids, w.MaterialID)
	}
	var materials []materialDomain.Material
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&materials).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint64]materialDomain.Material, len(materials))
	for _, m := range materials {
		byID[m.ID] = m
	}

	out := make([]withdrawalDomain.HolderItem, 0, len(ws))
	for _, w := range ws {
		out = append(out, withdrawalDomain.HolderItem{Withdrawal: w, Material: byID[w.MaterialID]})
	}
	return out, nil
}

func (r *WithdrawalRepository) ListByMaterial(ctx context.Context, materialID uint64) ([]withdrawalDomain.MaterialItem, error) {
	var ws []withdrawalDomain.Withdrawal
	err := r.db.WithContext(ctx).
		Where("material_id = ?", materialID).
		Order("withdrawal_date DESC, id DESC").
		Find(&ws).Error
	if err != nil {
		return nil, err
	}
	return r.withHolders(ctx, ws)
}

func (r *WithdrawalRepository) withHolders(ctx context.Context, ws []withdrawalDomain.Withdrawal) ([]withdrawalDomain.MaterialItem, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	ids := make([]uint64, 0, len(ws))
	for _, w := range ws {
		ids = append(ids, w.HolderID)
	}
	var holders []holderDomain.Holder
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&holders).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint64]holderDomain.Holder, len(holders))
	for _, h := range holders {
		byID[h.ID] = h
	}

	out := make([]withdrawalDomain.MaterialItem, 0, len(ws))
	for _, w := range ws {
		out = append(out, withdrawalDomain.MaterialItem{Withdrawal: w, Holder: byID[w.HolderID]})
	}
	return out, nil
}

func (r *WithdrawalRepository) Save(ctx context.Context, w *withdrawalDomain.Withdrawal) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *WithdrawalRepository) CountByHolder(ctx context.Context, holderID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&withdrawalDomain.Withdrawal{}).
		Where("holder_id = ?", holderID).
		Count(&n).Error
	return n, err
}

func (r *WithdrawalRepository) CountByMaterial(ctx context.Context, materialID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&withdrawalDomain.Withdrawal{}).
		Where("material_id = ?", materialID).
		Count(&n).Error
	return n, err
}

func (r *WithdrawalRepository) DeleteByHolder(ctx context.Context, holderID uint64) error {
	return r.db.WithContext(ctx).
		Where("holder_id = ?", holderID).
		Delete(&withdrawalDomain.Withdrawal{}).Error
}

func (r *WithdrawalRepository) DeleteByMaterial(ctx context.Context, materialID uint64) error {
	return r.db.WithContext(ctx).
		Where("material_id = ?", materialID).
		Delete(&withdrawalDomain.Withdrawal{}).Error
}
