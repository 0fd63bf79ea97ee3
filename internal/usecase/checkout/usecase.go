package checkout

import (
	"context"
	"time"

	"stockroom-backend/internal/domain/ledger"
	domainMaterial "stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/domain/uow"
	domainWithdrawal "stockroom-backend/internal/domain/withdrawal"
	"stockroom-backend/internal/metrics"
	"stockroom-backend/internal/usecase/stock"
)

type Usecase struct {
	withdrawalRepo domainWithdrawal.Repository
	uow            uow.UnitOfWork
}

func NewUsecase(withdrawals domainWithdrawal.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{withdrawalRepo: withdrawals, uow: tx}
}

// Checkout gives the holder sole custody of an equipment item. The
// open-checkout check and the insert run under the material lock, so of two
// concurrent attempts exactly one succeeds and the other sees
// ErrAlreadyCheckedOut.
func (u *Usecase) Checkout(ctx context.Context, in CheckoutInput) (*WithdrawalDTO, error) {
	var dto *WithdrawalDTO
	err := u.uow.WithinMaterialTx(ctx, in.MaterialID, func(r uow.Repos, m *domainMaterial.Material) error {
		if m.Type != domainMaterial.TypeEquipment {
			return ledger.ErrInvalidInput
		}
		if _, err := r.Holders.GetByID(ctx, in.HolderID); err != nil {
			return err
		}
		open, err := r.Withdrawals.GetOpenByMaterial(ctx, m.ID)
		if err != nil {
			return err
		}
		if open != nil {
			return domainWithdrawal.ErrAlreadyCheckedOut
		}

		w := &domainWithdrawal.Withdrawal{
			HolderID:       in.HolderID,
			MaterialID:     m.ID,
			Amount:         1,
			WithdrawalDate: time.Now().UTC(),
			Notes:          in.Notes,
		}
		if err := r.Withdrawals.Create(ctx, w); err != nil {
			return err
		}
		dto = toDTO(w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.CheckoutTotal.Inc()
	return dto, nil
}

// Consume issues consumable stock to a holder: the FEFO deduction and the
// permanent withdrawal row commit together or not at all.
func (u *Usecase) Consume(ctx context.Context, in ConsumeInput) (*ConsumeResult, error) {
	if in.Amount <= 0 {
		return nil, ledger.ErrInvalidInput
	}
	var result *ConsumeResult
	err := u.uow.WithinMaterialTx(ctx, in.MaterialID, func(r uow.Repos, m *domainMaterial.Material) error {
		if m.Type != domainMaterial.TypeConsumable {
			return ledger.ErrInvalidInput
		}
		if _, err := r.Holders.GetByID(ctx, in.HolderID); err != nil {
			return err
		}
		plan, err := stock.DeductFEFO(ctx, r, m.ID, in.Amount)
		if err != nil {
			return err
		}

		w := &domainWithdrawal.Withdrawal{
			HolderID:       in.HolderID,
			MaterialID:     m.ID,
			Amount:         in.Amount,
			WithdrawalDate: time.Now().UTC(),
			Notes:          in.Notes,
		}
		if err := r.Withdrawals.Create(ctx, w); err != nil {
			return err
		}
		result = &ConsumeResult{Withdrawal: *toDTO(w), Deductions: plan}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ConsumeTotal.Inc()
	return result, nil
}

// Return closes a checkout: the return pair is set exactly once, and the
// owning material's efficiency flag tracks the outcome of this return.
// Consumable withdrawals are permanent records and cannot be returned.
func (u *Usecase) Return(ctx context.Context, withdrawalID uint64, efficient bool) (*WithdrawalDTO, error) {
	var dto *WithdrawalDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		w, err := r.Withdrawals.GetByIDForUpdate(ctx, withdrawalID)
		if err != nil {
			return err
		}
		m, err := r.Materials.GetByIDForUpdate(ctx, w.MaterialID)
		if err != nil {
			return err
		}
		if m.Type != domainMaterial.TypeEquipment {
			return ledger.ErrInvalidInput
		}
		if w.ReturnDate != nil {
			return domainWithdrawal.ErrAlreadyReturned
		}

		now := time.Now().UTC()
		w.ReturnDate = &now
		w.EfficientAtReturn = &efficient
		if err := r.Withdrawals.Save(ctx, w); err != nil {
			return err
		}

		m.IsEfficient = efficient
		if err := r.Materials.Save(ctx, m); err != nil {
			return err
		}
		dto = toDTO(w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ReturnTotal.Inc()
	return dto, nil
}

func (u *Usecase) ListByHolder(ctx context.Context, holderID uint64) ([]HolderWithdrawalDTO, error) {
	items, err := u.withdrawalRepo.ListByHolder(ctx, holderID)
	if err != nil {
		return nil, err
	}
	out := make([]HolderWithdrawalDTO, 0, len(items))
	for i := range items {
		it := &items[i]
		out = append(out, HolderWithdrawalDTO{
			Withdrawal:   *toDTO(&it.Withdrawal),
			MaterialID:   it.Material.ID,
			Material:     it.Material.Denomination,
			MaterialType: it.Material.Type,
		})
	}
	return out, nil
}

func (u *Usecase) ListByMaterial(ctx context.Context, materialID uint64) ([]MaterialWithdrawalDTO, error) {
	items, err := u.withdrawalRepo.ListByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	return toMaterialDTOs(items), nil
}

// ListActiveCheckouts returns material id -> the open withdrawal with its
// holder, for every equipment item currently out.
func (u *Usecase) ListActiveCheckouts(ctx context.Context) (map[uint64]MaterialWithdrawalDTO, error) {
	items, err := u.withdrawalRepo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[uint64]MaterialWithdrawalDTO, len(items))
	for _, dto := range toMaterialDTOs(items) {
		out[dto.Withdrawal.MaterialID] = dto
	}
	return out, nil
}

func toMaterialDTOs(items []domainWithdrawal.MaterialItem) []MaterialWithdrawalDTO {
	out := make([]MaterialWithdrawalDTO, 0, len(items))
	for i := range items {
		it := &items[i]
		out = append(out, MaterialWithdrawalDTO{
			Withdrawal: *toDTO(&it.Withdrawal),
			HolderID:   it.Holder.ID,
			Holder:     it.Holder.FirstName + " " + it.Holder.LastName,
			ShortCode:  it.Holder.ShortCode,
		})
	}
	return out
}

func toDTO(w *domainWithdrawal.Withdrawal) *WithdrawalDTO {
	return &WithdrawalDTO{
		ID:                w.ID,
		HolderID:          w.HolderID,
		MaterialID:        w.MaterialID,
		Amount:            w.Amount,
		WithdrawalDate:    w.WithdrawalDate,
		Notes:             w.Notes,
		ReturnDate:        w.ReturnDate,
		EfficientAtReturn: w.EfficientAtReturn,
	}
}
