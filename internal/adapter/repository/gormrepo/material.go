package gormrepo

import (
	"context"
	"errors"

	materialDomain "stockroom-backend/internal/domain/material"

	"gorm.io/gorm"
)

type MaterialRepository struct{ db *gorm.DB }

func NewMaterialRepository(db *gorm.DB) *MaterialRepository { return &MaterialRepository{db: db} }

func (r *MaterialRepository) Create(ctx context.Context, m *materialDomain.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MaterialRepository) get(ctx context.Context, db *gorm.DB, id uint64) (*materialDomain.Material, error) {
	var out materialDomain.Material
	res := db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, materialDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *MaterialRepository) GetByID(ctx context.Context, id uint64) (*materialDomain.Material, error) {
	return r.get(ctx, r.db, id)
}

func (r *MaterialRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*materialDomain.Material, error) {
	return r.get(ctx, forUpdate(r.db), id)
}

func (r *MaterialRepository) List(ctx context.Context, t *materialDomain.Type) ([]materialDomain.Material, error) {
	q := r.db.WithContext(ctx).Order("denomination, id")
	if t != nil {
		q = q.Where("material_type = ?", *t)
	}
	var out []materialDomain.Material
	err := q.Find(&out).Error
	return out, err
}

func (r *MaterialRepository) ListDamagedEquipment(ctx context.Context) ([]materialDomain.Material, error) {
	var out []materialDomain.Material
	err := r.db.WithContext(ctx).
		Where("material_type = ? AND is_efficient = ?", materialDomain.TypeEquipment, false).
		Order("denomination, id").
		Find(&out).Error
	return out, err
}

func (r *MaterialRepository) Save(ctx context.Context, m *materialDomain.Material) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MaterialRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&materialDomain.Material{}, id).Error
}
