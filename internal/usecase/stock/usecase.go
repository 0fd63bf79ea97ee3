package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stockroom-backend/internal/domain/batch"
	"stockroom-backend/internal/domain/eventlog"
	"stockroom-backend/internal/domain/ledger"
	domainMaterial "stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/domain/uow"
	"stockroom-backend/internal/metrics"
	"stockroom-backend/pkg/id"
)

type Usecase struct {
	materialRepo domainMaterial.Repository
	batchRepo    batch.Repository
	uow          uow.UnitOfWork
}

func NewUsecase(materials domainMaterial.Repository, batches batch.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{materialRepo: materials, batchRepo: batches, uow: tx}
}

// TotalStock is the authoritative quantity on hand: batch amounts are already
// net of prior deductions, so no withdrawal history enters the figure.
func (u *Usecase) TotalStock(ctx context.Context, materialID uint64) (int64, error) {
	if _, err := u.materialRepo.GetByID(ctx, materialID); err != nil {
		return 0, err
	}
	return u.batchRepo.TotalStock(ctx, materialID)
}

// TotalStocks returns material id -> on-hand quantity for every material that
// has at least one batch.
func (u *Usecase) TotalStocks(ctx context.Context) (map[uint64]int64, error) {
	return u.batchRepo.TotalStocks(ctx)
}

// AddBatch stocks in a new lot. Lots are never merged, even on matching
// expirations: each stocking event stays traceable on its own row.
func (u *Usecase) AddBatch(ctx context.Context, in AddBatchInput) (*BatchDTO, error) {
	if in.Amount <= 0 || in.Expiration.IsZero() {
		return nil, ledger.ErrInvalidInput
	}

	var dto *BatchDTO
	err := u.uow.WithinMaterialTx(ctx, in.MaterialID, func(r uow.Repos, m *domainMaterial.Material) error {
		b := &batch.Batch{
			MaterialID: m.ID,
			Expiration: in.Expiration,
			Amount:     in.Amount,
			Location:   in.Location,
		}
		if err := r.Batches.Create(ctx, b); err != nil {
			return err
		}
		details := fmt.Sprintf("batch=%d amount=%d expiration=%s", b.ID, b.Amount, b.Expiration.Format("2006-01-02"))
		if err := r.Events.Append(ctx, &eventlog.Event{
			EventID:     id.NewID32(),
			EventType:   eventlog.BatchAdded,
			Description: fmt.Sprintf("batch added to %q", m.Denomination),
			Details:     &details,
		}); err != nil {
			return err
		}
		dto = toBatchDTO(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ListBatches(ctx context.Context, materialID uint64) ([]BatchDTO, error) {
	if _, err := u.materialRepo.GetByID(ctx, materialID); err != nil {
		return nil, err
	}
	bs, err := u.batchRepo.ListByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	out := make([]BatchDTO, 0, len(bs))
	for i := range bs {
		out = append(out, *toBatchDTO(&bs[i]))
	}
	return out, nil
}

// Consume deducts amount from the material's lots first-expired-first-out.
// Expired lots are offered first on purpose, so they are used or discarded
// before fresh stock. Either every deduction commits or none does.
func (u *Usecase) Consume(ctx context.Context, materialID uint64, amount int64) ([]Deduction, error) {
	if amount <= 0 {
		return nil, ledger.ErrInvalidInput
	}
	var plan []Deduction
	err := u.uow.WithinMaterialTx(ctx, materialID, func(r uow.Repos, _ *domainMaterial.Material) error {
		p, err := DeductFEFO(ctx, r, materialID, amount)
		if err != nil {
			return err
		}
		plan = p
		return nil
	})
	if err != nil {
		var ins *batch.InsufficientStockError
		if errors.As(err, &ins) {
			metrics.InsufficientStockTotal.Inc()
		}
		return nil, err
	}
	metrics.ConsumeTotal.Inc()
	return plan, nil
}

// DeductFEFO walks the open batches of the material in expiration order,
// deducting from each until amount is satisfied. It must run inside a
// transaction that holds the material lock; the caller owns that boundary.
func DeductFEFO(ctx context.Context, r uow.Repos, materialID uint64, amount int64) ([]Deduction, error) {
	batches, err := r.Batches.ListOpenFEFO(ctx, materialID)
	if err != nil {
		return nil, err
	}
	var available int64
	for _, b := range batches {
		available += b.Amount
	}
	if available < amount {
		return nil, &batch.InsufficientStockError{Available: available, Requested: amount}
	}

	remaining := amount
	plan := make([]Deduction, 0, len(batches))
	for i := range batches {
		if remaining == 0 {
			break
		}
		b := &batches[i]
		take := b.Amount
		if take > remaining {
			take = remaining
		}
		b.Amount -= take
		remaining -= take
		if err := r.Batches.Save(ctx, b); err != nil {
			return nil, err
		}
		plan = append(plan, Deduction{BatchID: b.ID, Deducted: take})
	}
	return plan, nil
}

// Expiring lists open consumable lots expiring within the window, most
// urgent first, annotated with the material's total availability.
func (u *Usecase) Expiring(ctx context.Context, withinDays, limit int) ([]ExpiringDTO, error) {
	if withinDays < 0 {
		return nil, ledger.ErrInvalidInput
	}
	cutoff := time.Now().AddDate(0, 0, withinDays)
	items, err := u.batchRepo.ListExpiring(ctx, cutoff, limit)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	totals, err := u.batchRepo.TotalStocks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ExpiringDTO, 0, len(items))
	for i := range items {
		it := &items[i]
		out = append(out, ExpiringDTO{
			Batch:      *toBatchDTO(&it.Batch),
			MaterialID: it.Material.ID,
			Material:   it.Material.Denomination,
			Type:       it.Material.Type,
			TotalStock: totals[it.Material.ID],
		})
	}
	return out, nil
}

// LowStock returns every consumable with a positive threshold whose total
// stock has fallen to or below it.
func (u *Usecase) LowStock(ctx context.Context) ([]LowStockDTO, error) {
	t := domainMaterial.TypeConsumable
	materials, err := u.materialRepo.List(ctx, &t)
	if err != nil {
		return nil, err
	}
	totals, err := u.batchRepo.TotalStocks(ctx)
	if err != nil {
		return nil, err
	}
	var out []LowStockDTO
	for _, m := range materials {
		if m.MinStock <= 0 {
			continue
		}
		if total := totals[m.ID]; total <= m.MinStock {
			out = append(out, LowStockDTO{
				MaterialID:   m.ID,
				Denomination: m.Denomination,
				MinStock:     m.MinStock,
				TotalStock:   total,
			})
		}
	}
	return out, nil
}

func toBatchDTO(b *batch.Batch) *BatchDTO {
	return &BatchDTO{
		ID:         b.ID,
		MaterialID: b.MaterialID,
		Expiration: b.Expiration,
		Amount:     b.Amount,
		Location:   b.Location,
	}
}
