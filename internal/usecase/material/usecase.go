package material

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stockroom-backend/internal/domain/batch"
	"stockroom-backend/internal/domain/eventlog"
	"stockroom-backend/internal/domain/ledger"
	domainMaterial "stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/domain/uow"
	"stockroom-backend/internal/domain/withdrawal"
	"stockroom-backend/pkg/id"
)

type Usecase struct {
	materialRepo   domainMaterial.Repository
	batchRepo      batch.Repository
	withdrawalRepo withdrawal.Repository
	uow            uow.UnitOfWork
}

func NewUsecase(materials domainMaterial.Repository, batches batch.Repository, withdrawals withdrawal.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{materialRepo: materials, batchRepo: batches, withdrawalRepo: withdrawals, uow: tx}
}

// Create adds a catalog entry, optionally stocking in a first lot, and
// appends the audit event in the same transaction.
func (u *Usecase) Create(ctx context.Context, in CreateMaterialInput) (*MaterialDTO, error) {
	if !in.Type.Valid() || strings.TrimSpace(in.Denomination) == "" {
		return nil, ledger.ErrInvalidInput
	}
	if in.MinStock != nil && *in.MinStock < 0 {
		return nil, ledger.ErrInvalidInput
	}
	if in.InitialBatch != nil && in.InitialBatch.Amount <= 0 {
		return nil, ledger.ErrInvalidInput
	}

	var dto *MaterialDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		m := &domainMaterial.Material{
			Type:         in.Type,
			Denomination: strings.TrimSpace(in.Denomination),
			NDC:          in.NDC,
			PartNumber:   in.PartNumber,
			SerialNumber: in.SerialNumber,
			Code:         in.Code,
			ImagePath:    in.ImagePath,
			IsEfficient:  true,
		}
		if in.MinStock != nil {
			m.MinStock = *in.MinStock
		}
		if err := r.Materials.Create(ctx, m); err != nil {
			return err
		}

		if in.InitialBatch != nil {
			b := &batch.Batch{
				MaterialID: m.ID,
				Expiration: in.InitialBatch.Expiration,
				Amount:     in.InitialBatch.Amount,
				Location:   in.InitialBatch.Location,
			}
			if err := r.Batches.Create(ctx, b); err != nil {
				return err
			}
		}

		if err := appendEvent(ctx, r, eventlog.MaterialCreated,
			fmt.Sprintf("material %q created", m.Denomination),
			fmt.Sprintf("id=%d type=%s", m.ID, m.Type)); err != nil {
			return err
		}
		dto = toDTO(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, idn uint64) (*MaterialDTO, error) {
	m, err := u.materialRepo.GetByID(ctx, idn)
	if err != nil {
		return nil, err
	}
	return toDTO(m), nil
}

func (u *Usecase) List(ctx context.Context, t *domainMaterial.Type) ([]MaterialDTO, error) {
	if t != nil && !t.Valid() {
		return nil, ledger.ErrInvalidInput
	}
	ms, err := u.materialRepo.List(ctx, t)
	if err != nil {
		return nil, err
	}
	out := make([]MaterialDTO, 0, len(ms))
	for i := range ms {
		out = append(out, *toDTO(&ms[i]))
	}
	return out, nil
}

// Update applies the non-nil fields in place. For equipment, a non-nil
// Location is recorded on the item's storage-location batch: the most recent
// batch if one exists, otherwise a new amount-1 batch dated today.
func (u *Usecase) Update(ctx context.Context, idn uint64, in UpdateMaterialInput) (*MaterialDTO, error) {
	if in.Denomination != nil && strings.TrimSpace(*in.Denomination) == "" {
		return nil, ledger.ErrInvalidInput
	}
	if in.MinStock != nil && *in.MinStock < 0 {
		return nil, ledger.ErrInvalidInput
	}

	var dto *MaterialDTO
	err := u.uow.WithinMaterialTx(ctx, idn, func(r uow.Repos, m *domainMaterial.Material) error {
		if in.Denomination != nil {
			m.Denomination = strings.TrimSpace(*in.Denomination)
		}
		if in.NDC != nil {
			m.NDC = in.NDC
		}
		if in.PartNumber != nil {
			m.PartNumber = in.PartNumber
		}
		if in.SerialNumber != nil {
			m.SerialNumber = in.SerialNumber
		}
		if in.Code != nil {
			m.Code = in.Code
		}
		if in.ImagePath != nil {
			m.ImagePath = in.ImagePath
		}
		if in.MinStock != nil {
			m.MinStock = *in.MinStock
		}
		if err := r.Materials.Save(ctx, m); err != nil {
			return err
		}

		if in.Location != nil && m.Type == domainMaterial.TypeEquipment {
			if err := updateEquipmentLocation(ctx, r, m.ID, in.Location); err != nil {
				return err
			}
		}

		if err := appendEvent(ctx, r, eventlog.MaterialUpdated,
			fmt.Sprintf("material %q updated", m.Denomination),
			fmt.Sprintf("id=%d", m.ID)); err != nil {
			return err
		}
		dto = toDTO(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// updateEquipmentLocation keeps the convention that an equipment item's batch
// records where it is stored.
func updateEquipmentLocation(ctx context.Context, r uow.Repos, materialID uint64, location *string) error {
	batches, err := r.Batches.ListByMaterial(ctx, materialID)
	if err != nil {
		return err
	}
	if len(batches) == 0 {
		return r.Batches.Create(ctx, &batch.Batch{
			MaterialID: materialID,
			Expiration: time.Now(),
			Amount:     1,
			Location:   location,
		})
	}
	// ListByMaterial orders by expiration; the most recently created batch is
	// the one with the highest id
	b := &batches[0]
	for i := range batches {
		if batches[i].ID > b.ID {
			b = &batches[i]
		}
	}
	b.Location = location
	return r.Batches.Save(ctx, b)
}

// Delete removes the material's withdrawals, then its batches, then the
// material itself, all-or-nothing, and emits one audit event naming it.
func (u *Usecase) Delete(ctx context.Context, idn uint64) error {
	return u.uow.WithinMaterialTx(ctx, idn, func(r uow.Repos, m *domainMaterial.Material) error {
		if err := r.Withdrawals.DeleteByMaterial(ctx, m.ID); err != nil {
			return err
		}
		if err := r.Batches.DeleteByMaterial(ctx, m.ID); err != nil {
			return err
		}
		if err := r.Materials.Delete(ctx, m.ID); err != nil {
			return err
		}
		return appendEvent(ctx, r, eventlog.MaterialDeleted,
			fmt.Sprintf("material %q deleted", m.Denomination),
			fmt.Sprintf("id=%d type=%s", m.ID, m.Type))
	})
}

func (u *Usecase) DependencyCount(ctx context.Context, idn uint64) (*DependencyCount, error) {
	if _, err := u.materialRepo.GetByID(ctx, idn); err != nil {
		return nil, err
	}
	batches, err := u.batchRepo.CountByMaterial(ctx, idn)
	if err != nil {
		return nil, err
	}
	withdrawals, err := u.withdrawalRepo.CountByMaterial(ctx, idn)
	if err != nil {
		return nil, err
	}
	return &DependencyCount{Batches: batches, Withdrawals: withdrawals}, nil
}

func appendEvent(ctx context.Context, r uow.Repos, t eventlog.EventType, description, details string) error {
	return r.Events.Append(ctx, &eventlog.Event{
		EventID:     id.NewID32(),
		EventType:   t,
		Description: description,
		Details:     &details,
	})
}

func toDTO(m *domainMaterial.Material) *MaterialDTO {
	return &MaterialDTO{
		ID:           m.ID,
		Type:         m.Type,
		Denomination: m.Denomination,
		NDC:          m.NDC,
		PartNumber:   m.PartNumber,
		SerialNumber: m.SerialNumber,
		Code:         m.Code,
		ImagePath:    m.ImagePath,
		IsEfficient:  m.IsEfficient,
		MinStock:     m.MinStock,
		CreatedAt:    m.CreatedAt,
	}
}
