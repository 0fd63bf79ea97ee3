package gormrepo

import (
	"context"
	"errors"

	holderDomain "stockroom-backend/internal/domain/holder"

	"gorm.io/gorm"
)

type HolderRepository struct{ db *gorm.DB }

func NewHolderRepository(db *gorm.DB) *HolderRepository { return &HolderRepository{db: db} }

func (r *HolderRepository) Create(ctx context.Context, h *holderDomain.Holder) error {
	err := r.db.WithContext(ctx).Create(h).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return holderDomain.ErrShortCodeTaken
	}
	return err
}

func (r *HolderRepository) GetByID(ctx context.Context, id uint64) (*holderDomain.Holder, error) {
	var out holderDomain.Holder
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, holderDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *HolderRepository) ListShortCodesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&holderDomain.Holder{}).
		Where("short_code LIKE ?", prefix+"%").
		Pluck("short_code", &codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *HolderRepository) List(ctx context.Context) ([]holderDomain.Holder, error) {
	var out []holderDomain.Holder
	err := r.db.WithContext(ctx).
		Order("last_name, first_name, id").
		Find(&out).Error
	return out, err
}

func (r *HolderRepository) Save(ctx context.Context, h *holderDomain.Holder) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HolderRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&holderDomain.Holder{}, id).Error
}
