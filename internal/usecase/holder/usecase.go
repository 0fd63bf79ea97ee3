package holder

import (
	"context"
	"errors"
	"strings"

	domainHolder "stockroom-backend/internal/domain/holder"
	"stockroom-backend/internal/domain/ledger"
	"stockroom-backend/internal/domain/uow"
	"stockroom-backend/internal/domain/withdrawal"
	"stockroom-backend/internal/metrics"
	"stockroom-backend/pkg/shortcode"
)

// maxAllocRetries bounds the re-probe loop when two registrations race on the
// same prefix; the unique index on short_code detects the loser.
const maxAllocRetries = 3

type Usecase struct {
	holderRepo     domainHolder.Repository
	withdrawalRepo withdrawal.Repository
	uow            uow.UnitOfWork
}

func NewUsecase(holders domainHolder.Repository, withdrawals withdrawal.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{holderRepo: holders, withdrawalRepo: withdrawals, uow: tx}
}

// Create registers a holder, allocating the smallest free short code for the
// name-initial prefix inside the same transaction as the insert.
func (u *Usecase) Create(ctx context.Context, in CreateHolderInput) (*HolderDTO, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	prefix, err := shortcode.Prefix(first, last)
	if err != nil {
		return nil, ledger.ErrInvalidInput
	}

	var dto *HolderDTO
	for attempt := 0; attempt < maxAllocRetries; attempt++ {
		err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
			taken, err := r.Holders.ListShortCodesByPrefix(ctx, prefix)
			if err != nil {
				return err
			}
			code := shortcode.Next(prefix, taken)

			h := &domainHolder.Holder{
				ShortCode: code,
				Title:     in.Title,
				FirstName: first,
				LastName:  last,
				Workplace: in.Workplace,
				Mobile:    in.Mobile,
				Email:     in.Email,
				Code:      code,
				Notes:     in.Notes,
			}
			if in.Code != nil && strings.TrimSpace(*in.Code) != "" {
				h.Code = strings.TrimSpace(*in.Code)
			}
			if err := r.Holders.Create(ctx, h); err != nil {
				return err
			}
			dto = toDTO(h)
			return nil
		})
		if err == nil {
			return dto, nil
		}
		if !errors.Is(err, domainHolder.ErrShortCodeTaken) {
			return nil, err
		}
	}
	metrics.ConflictTotal.Inc()
	return nil, ledger.ErrConflict
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*HolderDTO, error) {
	h, err := u.holderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(h), nil
}

func (u *Usecase) List(ctx context.Context) ([]HolderDTO, error) {
	hs, err := u.holderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]HolderDTO, 0, len(hs))
	for i := range hs {
		out = append(out, *toDTO(&hs[i]))
	}
	return out, nil
}

// Update applies the non-nil fields. Names cannot be blanked; the short code
// is immutable once allocated.
func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateHolderInput) (*HolderDTO, error) {
	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) == "" {
		return nil, ledger.ErrInvalidInput
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) == "" {
		return nil, ledger.ErrInvalidInput
	}

	var dto *HolderDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		h, err := r.Holders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if in.FirstName != nil {
			h.FirstName = strings.TrimSpace(*in.FirstName)
		}
		if in.LastName != nil {
			h.LastName = strings.TrimSpace(*in.LastName)
		}
		if in.Title != nil {
			h.Title = in.Title
		}
		if in.Workplace != nil {
			h.Workplace = in.Workplace
		}
		if in.Mobile != nil {
			h.Mobile = in.Mobile
		}
		if in.Email != nil {
			h.Email = in.Email
		}
		if in.Notes != nil {
			h.Notes = in.Notes
		}
		if in.Code != nil {
			if c := strings.TrimSpace(*in.Code); c != "" {
				h.Code = c
			} else {
				h.Code = h.ShortCode
			}
		}
		if err := r.Holders.Save(ctx, h); err != nil {
			return err
		}
		dto = toDTO(h)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Delete removes the holder and all of its withdrawal rows in one
// transaction. Materials and batches are left intact.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Holders.GetByID(ctx, id); err != nil {
			return err
		}
		if err := r.Withdrawals.DeleteByHolder(ctx, id); err != nil {
			return err
		}
		return r.Holders.Delete(ctx, id)
	})
}

func (u *Usecase) DependencyCount(ctx context.Context, id uint64) (*DependencyCount, error) {
	if _, err := u.holderRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	n, err := u.withdrawalRepo.CountByHolder(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DependencyCount{Withdrawals: n}, nil
}

func toDTO(h *domainHolder.Holder) *HolderDTO {
	return &HolderDTO{
		ID:        h.ID,
		ShortCode: h.ShortCode,
		Title:     h.Title,
		FirstName: h.FirstName,
		LastName:  h.LastName,
		Workplace: h.Workplace,
		Mobile:    h.Mobile,
		Email:     h.Email,
		Code:      h.Code,
		Notes:     h.Notes,
		CreatedAt: h.CreatedAt,
	}
}
