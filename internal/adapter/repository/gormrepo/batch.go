package gormrepo

import (
	"context"
	"errors"
	"time"

	batchDomain "stockroom-backend/internal/domain/batch"
	materialDomain "stockroom-backend/internal/domain/material"

	"gorm.io/gorm"
)

type BatchRepository struct{ db *gorm.DB }

func NewBatchRepository(db *gorm.DB) *BatchRepository { return &BatchRepository{db: db} }

func (r *BatchRepository) Create(ctx context.Context, b *batchDomain.Batch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BatchRepository) GetByID(ctx context.Context, id uint64) (*batchDomain.Batch, error) {
	var out batchDomain.Batch
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, batchDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *BatchRepository) ListByMaterial(ctx context.Context, materialID uint64) ([]batchDomain.Batch, error) {
	var out []batchDomain.Batch
	err := r.db.WithContext(ctx).
		Where("material_id = ?", materialID).
		Order("expiration, id").
		Find(&out).Error
	return out, err
}

func (r *BatchRepository) ListOpenFEFO(ctx context.Context, materialID uint64) ([]batchDomain.Batch, error) {
	var out []batchDomain.Batch
	err := r.db.WithContext(ctx).
		Where("material_id = ? AND amount > 0", materialID).
		Order("expiration, id").
		Find(&out).Error
	return out, err
}

func (r *BatchRepository) ListExpiring(ctx context.Context, cutoff time.Time, limit int) ([]batchDomain.Expiring, error) {
	var batches []batchDomain.Batch
	q := r.db.WithContext(ctx).
		Select("batches.*").
		Joins("JOIN materials ON materials.id = batches.material_id").
		Where("materials.material_type = ?", materialDomain.TypeConsumable).
		Where("batches.amount > 0 AND batches.expiration <= ?", cutoff).
		Order("batches.expiration, batches.id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&batches).Error; err != nil {
		return nil, err
	}
	if len(batches) == 0 {
		return nil, nil
	}

	ids := make([]uint64, 0, len(batches))
	for _, b := range batches {
		ids = append(ids, b.MaterialID)
	}
	var materials []materialDomain.Material
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&materials).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint64]materialDomain.Material, len(materials))
	for _, m := range materials {
		byID[m.ID] = m
	}

	out := make([]batchDomain.Expiring, 0, len(batches))
	for _, b := range batches {
		out = append(out, batchDomain.Expiring{Batch: b, Material: byID[b.MaterialID]})
	}
	return out, nil
}

func (r *BatchRepository) Save(ctx context.Context, b *batchDomain.Batch) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BatchRepository) TotalStock(ctx context.Context, materialID uint64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&batchDomain.Batch{}).
		Where("material_id = ?", materialID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *BatchRepository) TotalStocks(ctx context.Context) (map[uint64]int64, error) {
	var rows []struct {
		MaterialID uint64
		Total      int64
	}
	err := r.db.WithContext(ctx).
		Model(&batchDomain.Batch{}).
		Select("material_id, COALESCE(SUM(amount), 0) AS total").
		Group("material_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		out[row.MaterialID] = row.Total
	}
	return out, nil
}

func (r *BatchRepository) CountByMaterial(ctx context.Context, materialID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&batchDomain.Batch{}).
		Where("material_id = ?", materialID).
		Count(&n).Error
	return n, err
}

func (r *BatchRepository) DeleteByMaterial(ctx context.Context, materialID uint64) error {
	return r.db.WithContext(ctx).
		Where("material_id = ?", materialID).
		Delete(&batchDomain.Batch{}).Error
}
