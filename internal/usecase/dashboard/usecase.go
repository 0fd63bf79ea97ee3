// Package dashboard derives the read-only alert and availability views. It
// never mutates the store: everything here recomposes batch-ledger and
// checkout-manager queries so the UI and the ledger cannot disagree about
// material state.
package dashboard

import (
	"context"

	domainMaterial "stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/usecase/checkout"
	"stockroom-backend/internal/usecase/stock"
)

type Usecase struct {
	materialRepo domainMaterial.Repository
	stockUC      *stock.Usecase
	checkoutUC   *checkout.Usecase
}

func NewUsecase(materials domainMaterial.Repository, stockUC *stock.Usecase, checkoutUC *checkout.Usecase) *Usecase {
	return &Usecase{materialRepo: materials, stockUC: stockUC, checkoutUC: checkoutUC}
}

func (u *Usecase) LowStock(ctx context.Context) ([]stock.LowStockDTO, error) {
	return u.stockUC.LowStock(ctx)
}

func (u *Usecase) ExpiringLots(ctx context.Context, withinDays, limit int) ([]stock.ExpiringDTO, error) {
	return u.stockUC.Expiring(ctx, withinDays, limit)
}

// DamagedEquipment lists equipment with is_efficient = false, naming the
// current holder when the item is also out.
func (u *Usecase) DamagedEquipment(ctx context.Context) ([]DamagedDTO, error) {
	damaged, err := u.materialRepo.ListDamagedEquipment(ctx)
	if err != nil {
		return nil, err
	}
	active, err := u.checkoutUC.ListActiveCheckouts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DamagedDTO, 0, len(damaged))
	for _, m := range damaged {
		dto := DamagedDTO{
			MaterialID:   m.ID,
			Denomination: m.Denomination,
			PartNumber:   m.PartNumber,
			SerialNumber: m.SerialNumber,
		}
		if a, ok := active[m.ID]; ok {
			h, sc := a.Holder, a.ShortCode
			dto.Holder, dto.ShortCode = &h, &sc
		}
		out = append(out, dto)
	}
	return out, nil
}

// Availability partitions all equipment into available / damaged /
// checked-out. A checked-out item reports checked_out even when damaged; the
// efficiency flag rides along separately.
func (u *Usecase) Availability(ctx context.Context) ([]EquipmentDTO, error) {
	t := domainMaterial.TypeEquipment
	equipment, err := u.materialRepo.List(ctx, &t)
	if err != nil {
		return nil, err
	}
	active, err := u.checkoutUC.ListActiveCheckouts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]EquipmentDTO, 0, len(equipment))
	for _, m := range equipment {
		dto := EquipmentDTO{
			MaterialID:   m.ID,
			Denomination: m.Denomination,
			IsEfficient:  m.IsEfficient,
		}
		switch a, checkedOut := active[m.ID]; {
		case checkedOut:
			dto.State = StateCheckedOut
			h := a.Holder
			dto.Holder = &h
		case !m.IsEfficient:
			dto.State = StateDamaged
		default:
			dto.State = StateAvailable
		}
		out = append(out, dto)
	}
	return out, nil
}

// Overview assembles all panels with one call per panel.
func (u *Usecase) Overview(ctx context.Context, expiryWindowDays, expiringLimit int) (*Overview, error) {
	low, err := u.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	expiring, err := u.ExpiringLots(ctx, expiryWindowDays, expiringLimit)
	if err != nil {
		return nil, err
	}
	damaged, err := u.DamagedEquipment(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := u.Availability(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{
		LowStock:     low,
		ExpiringLots: expiring,
		Damaged:      damaged,
		Equipment:    equipment,
	}, nil
}
