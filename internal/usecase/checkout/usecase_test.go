package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"stockroom-backend/internal/domain/batch"
	domainHolder "stockroom-backend/internal/domain/holder"
	"stockroom-backend/internal/domain/ledger"
	domainMaterial "stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/domain/uow"
	domainWithdrawal "stockroom-backend/internal/domain/withdrawal"
	"stockroom-backend/internal/testutil/batchmock"
	"stockroom-backend/internal/testutil/eventlogmock"
	"stockroom-backend/internal/testutil/holdermock"
	"stockroom-backend/internal/testutil/materialmock"
	"stockroom-backend/internal/testutil/uowmock"
	"stockroom-backend/internal/testutil/withdrawalmock"
)

func knownHolders() *holdermock.Repo {
	return &holdermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domainHolder.Holder, error) {
			return &domainHolder.Holder{ID: id, ShortCode: "MR1"}, nil
		},
	}
}

func materialTxUoW(t *testing.T, repos uow.Repos, m *domainMaterial.Material) *uowmock.UoW {
	t.Helper()
	return uowmock.New().WithWithinMaterialTx(
		func(ctx context.Context, materialID uint64, fn func(uow.Repos, *domainMaterial.Material) error) error {
			if materialID != m.ID {
				t.Fatalf("locked wrong material: want %d, got %d", m.ID, materialID)
			}
			return fn(repos, m)
		})
}

func TestCheckout_FreeEquipment(t *testing.T) {
	ctx := context.Background()
	m := &domainMaterial.Material{ID: 5, Type: domainMaterial.TypeEquipment, Denomination: "oscilloscope"}

	var created *domainWithdrawal.Withdrawal
	withdrawals := &withdrawalmock.Repo{
		GetOpenByMaterialFn: func(context.Context, uint64) (*domainWithdrawal.Withdrawal, error) {
			return nil, nil
		},
		CreateFn: func(ctx context.Context, w *domainWithdrawal.Withdrawal) error {
			w.ID = 30
			created = w
			return nil
		},
	}
	repos := uow.Repos{Holders: knownHolders(), Withdrawals: withdrawals}
	uc := NewUsecase(withdrawals, materialTxUoW(t, repos, m))

	dto, err := uc.Checkout(ctx, CheckoutInput{HolderID: 2, MaterialID: 5})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if dto.ID != 30 || dto.Amount != 1 {
		t.Fatalf("checkout row should carry amount 1: %+v", dto)
	}
	if created.ReturnDate != nil {
		t.Fatalf("fresh checkout must be open")
	}
	if created.WithdrawalDate.IsZero() {
		t.Fatalf("withdrawal date not stamped")
	}
}

func TestCheckout_AlreadyOut(t *testing.T) {
	ctx := context.Background()
	m := &domainMaterial.Material{ID: 5, Type: domainMaterial.TypeEquipment}

	withdrawals := &withdrawalmock.Repo{
		GetOpenByMaterialFn: func(context.Context, uint64) (*domainWithdrawal.Withdrawal, error) {
			return &domainWithdrawal.Withdrawal{ID: 9, MaterialID: 5, HolderID: 1}, nil
		},
		CreateFn: func(context.Context, *domainWithdrawal.Withdrawal) error {
			t.Fatal("must not insert a second open checkout")
			return nil
		},
	}
	repos := uow.Repos{Holders: knownHolders(), Withdrawals: withdrawals}
	uc := NewUsecase(withdrawals, materialTxUoW(t, repos, m))

	if _, err := uc.Checkout(ctx, CheckoutInput{HolderID: 2, MaterialID: 5}); !errors.Is(err, domainWithdrawal.ErrAlreadyCheckedOut) {
		t.Fatalf("want ErrAlreadyCheckedOut, got %v", err)
	}
}

func TestCheckout_ConsumableRejected(t *testing.T) {
	m := &domainMaterial.Material{ID: 5, Type: domainMaterial.TypeConsumable}
	repos := uow.Repos{Holders: knownHolders(), Withdrawals: &withdrawalmock.Repo{}}
	uc := NewUsecase(&withdrawalmock.Repo{}, materialTxUoW(t, repos, m))

	if _, err := uc.Checkout(context.Background(), CheckoutInput{HolderID: 2, MaterialID: 5}); !errors.Is(err, ledger.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestCheckout_UnknownHolder(t *testing.T) {
	m := &domainMaterial.Material{ID: 5, Type: domainMaterial.TypeEquipment}
	holders := &holdermock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domainHolder.Holder, error) {
			return nil, domainHolder.ErrNotFound
		},
	}
	repos := uow.Repos{Holders: holders, Withdrawals: &withdrawalmock.Repo{}}
	uc := NewUsecase(&withdrawalmock.Repo{}, materialTxUoW(t, repos, m))

	if _, err := uc.Checkout(context.Background(), CheckoutInput{HolderID: 404, MaterialID: 5}); !errors.Is(err, domainHolder.ErrNotFound) {
		t.Fatalf("want holder ErrNotFound, got %v", err)
	}
}

func TestConsume_DeductsAndRecordsWithdrawal(t *testing.T) {
	ctx := context.Background()
	m := &domainMaterial.Material{ID: 2, Type: domainMaterial.TypeConsumable, Denomination: "saline"}

	lot := batch.Batch{ID: 8, MaterialID: 2, Expiration: time.Now().AddDate(0, 0, 14), Amount: 10}
	batches := &batchmock.Repo{
		ListOpenFEFOFn: func(context.Context, uint64) ([]batch.Batch, error) {
			return []batch.Batch{lot}, nil
		},
		SaveFn: func(ctx context.Context, b *batch.Batch) error {
			lot = *b
			return nil
		},
	}
	var created *domainWithdrawal.Withdrawal
	withdrawals := &withdrawalmock.Repo{
		CreateFn: func(ctx context.Context, w *domainWithdrawal.Withdrawal) error {
			w.ID = 41
			created = w
			return nil
		},
	}
	repos := uow.Repos{
		Holders:     knownHolders(),
		Materials:   &materialmock.Repo{},
		Batches:     batches,
		Withdrawals: withdrawals,
		Events:      &eventlogmock.Repo{},
	}
	uc := NewUsecase(withdrawals, materialTxUoW(t, repos, m))

	res, err := uc.Consume(ctx, ConsumeInput{HolderID: 1, MaterialID: 2, Amount: 4})
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if len(res.Deductions) != 1 || res.Deductions[0].BatchID != 8 || res.Deductions[0].Deducted != 4 {
		t.Fatalf("unexpected deductions: %+v", res.Deductions)
	}
	if lot.Amount != 6 {
		t.Fatalf("lot should hold 6 after deduction, got %d", lot.Amount)
	}
	if created == nil || created.Amount != 4 || created.ReturnDate != nil {
		t.Fatalf("withdrawal row wrong: %+v", created)
	}
}

func TestConsume_EquipmentRejected(t *testing.T) {
	m := &domainMaterial.Material{ID: 2, Type: domainMaterial.TypeEquipment}
	repos := uow.Repos{Holders: knownHolders(), Withdrawals: &withdrawalmock.Repo{}}
	uc := NewUsecase(&withdrawalmock.Repo{}, materialTxUoW(t, repos, m))

	if _, err := uc.Consume(context.Background(), ConsumeInput{HolderID: 1, MaterialID: 2, Amount: 1}); !errors.Is(err, ledger.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestConsume_InsufficientStock(t *testing.T) {
	m := &domainMaterial.Material{ID: 2, Type: domainMaterial.TypeConsumable}
	batches := &batchmock.Repo{
		ListOpenFEFOFn: func(context.Context, uint64) ([]batch.Batch, error) {
			return []batch.Batch{{ID: 8, MaterialID: 2, Amount: 2}}, nil
		},
	}
	withdrawals := &withdrawalmock.Repo{
		CreateFn: func(context.Context, *domainWithdrawal.Withdrawal) error {
			t.Fatal("no withdrawal row on shortfall")
			return nil
		},
	}
	repos := uow.Repos{Holders: knownHolders(), Batches: batches, Withdrawals: withdrawals}
	uc := NewUsecase(withdrawals, materialTxUoW(t, repos, m))

	_, err := uc.Consume(context.Background(), ConsumeInput{HolderID: 1, MaterialID: 2, Amount: 3})
	var ins *batch.InsufficientStockError
	if !errors.As(err, &ins) {
		t.Fatalf("want InsufficientStockError, got %v", err)
	}
	if ins.Available != 2 || ins.Requested != 3 {
		t.Fatalf("wrong shortfall report: %+v", ins)
	}
}

func TestReturn_ClosesCheckoutAndFlagsMaterial(t *testing.T) {
	ctx := context.Background()

	w := &domainWithdrawal.Withdrawal{ID: 30, HolderID: 2, MaterialID: 5, Amount: 1, WithdrawalDate: time.Now().AddDate(0, 0, -3)}
	m := &domainMaterial.Material{ID: 5, Type: domainMaterial.TypeEquipment, IsEfficient: true}

	var savedW *domainWithdrawal.Withdrawal
	withdrawals := &withdrawalmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainWithdrawal.Withdrawal, error) {
			return w, nil
		},
		SaveFn: func(ctx context.Context, out *domainWithdrawal.Withdrawal) error {
			savedW = out
			return nil
		},
	}
	var savedM *domainMaterial.Material
	materials := &materialmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainMaterial.Material, error) {
			return m, nil
		},
		SaveFn: func(ctx context.Context, out *domainMaterial.Material) error {
			savedM = out
			return nil
		},
	}
	repos := uow.Repos{Materials: materials, Withdrawals: withdrawals}
	tx := uowmock.New().WithWithinTx(func(ctx context.Context, fn func(uow.Repos) error) error {
		return fn(repos)
	})
	uc := NewUsecase(withdrawals, tx)

	dto, err := uc.Return(ctx, 30, false)
	if err != nil {
		t.Fatalf("Return: %v", err)
	}
	if dto.ReturnDate == nil || dto.EfficientAtReturn == nil || *dto.EfficientAtReturn {
		t.Fatalf("return pair not recorded: %+v", dto)
	}
	if savedW == nil || savedW.ReturnDate == nil {
		t.Fatalf("withdrawal not saved closed")
	}
	if savedM == nil || savedM.IsEfficient {
		t.Fatalf("damaged return must flip the material flag")
	}
}

func TestReturn_AlreadyReturned(t *testing.T) {
	done := time.Now().AddDate(0, 0, -1)
	withdrawals := &withdrawalmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainWithdrawal.Withdrawal, error) {
			return &domainWithdrawal.Withdrawal{ID: id, MaterialID: 5, ReturnDate: &done}, nil
		},
		SaveFn: func(context.Context, *domainWithdrawal.Withdrawal) error {
			t.Fatal("closed checkout must not be rewritten")
			return nil
		},
	}
	materials := &materialmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainMaterial.Material, error) {
			return &domainMaterial.Material{ID: id, Type: domainMaterial.TypeEquipment}, nil
		},
	}
	repos := uow.Repos{Materials: materials, Withdrawals: withdrawals}
	tx := uowmock.New().WithWithinTx(func(ctx context.Context, fn func(uow.Repos) error) error {
		return fn(repos)
	})
	uc := NewUsecase(withdrawals, tx)

	if _, err := uc.Return(context.Background(), 30, true); !errors.Is(err, domainWithdrawal.ErrAlreadyReturned) {
		t.Fatalf("want ErrAlreadyReturned, got %v", err)
	}
}

func TestReturn_ConsumableWithdrawalRejected(t *testing.T) {
	withdrawals := &withdrawalmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainWithdrawal.Withdrawal, error) {
			return &domainWithdrawal.Withdrawal{ID: id, MaterialID: 2, Amount: 3}, nil
		},
		SaveFn: func(context.Context, *domainWithdrawal.Withdrawal) error {
			t.Fatal("consumption rows are permanent")
			return nil
		},
	}
	materials := &materialmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*domainMaterial.Material, error) {
			return &domainMaterial.Material{ID: id, Type: domainMaterial.TypeConsumable, IsEfficient: true}, nil
		},
		SaveFn: func(context.Context, *domainMaterial.Material) error {
			t.Fatal("a rejected return must not touch the material")
			return nil
		},
	}
	repos := uow.Repos{Materials: materials, Withdrawals: withdrawals}
	tx := uowmock.New().WithWithinTx(func(ctx context.Context, fn func(uow.Repos) error) error {
		return fn(repos)
	})
	uc := NewUsecase(withdrawals, tx)

	if _, err := uc.Return(context.Background(), 41, false); !errors.Is(err, ledger.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestListActiveCheckouts_KeyedByMaterial(t *testing.T) {
	withdrawals := &withdrawalmock.Repo{
		ListOpenFn: func(context.Context) ([]domainWithdrawal.MaterialItem, error) {
			return []domainWithdrawal.MaterialItem{
				{
					Withdrawal: domainWithdrawal.Withdrawal{ID: 1, MaterialID: 5, HolderID: 2},
					Holder:     domainHolder.Holder{ID: 2, FirstName: "Mario", LastName: "Rossi", ShortCode: "MR1"},
				},
				{
					Withdrawal: domainWithdrawal.Withdrawal{ID: 2, MaterialID: 7, HolderID: 3},
					Holder:     domainHolder.Holder{ID: 3, FirstName: "Anna", LastName: "Bianchi", ShortCode: "AB1"},
				},
			}, nil
		},
	}
	uc := NewUsecase(withdrawals, uowmock.New())

	out, err := uc.ListActiveCheckouts(context.Background())
	if err != nil {
		t.Fatalf("ListActiveCheckouts: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 active checkouts, got %d", len(out))
	}
	if out[5].Holder != "Mario Rossi" || out[5].ShortCode != "MR1" {
		t.Fatalf("material 5 annotation wrong: %+v", out[5])
	}
	if out[7].HolderID != 3 {
		t.Fatalf("material 7 annotation wrong: %+v", out[7])
	}
}

func TestListByHolder_AnnotatesMaterial(t *testing.T) {
	withdrawals := &withdrawalmock.Repo{
		ListByHolderFn: func(ctx context.Context, holderID uint64) ([]domainWithdrawal.HolderItem, error) {
			return []domainWithdrawal.HolderItem{{
				Withdrawal: domainWithdrawal.Withdrawal{ID: 1, HolderID: holderID, MaterialID: 2, Amount: 4},
				Material:   domainMaterial.Material{ID: 2, Denomination: "saline", Type: domainMaterial.TypeConsumable},
			}}, nil
		},
	}
	uc := NewUsecase(withdrawals, uowmock.New())

	out, err := uc.ListByHolder(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByHolder: %v", err)
	}
	if len(out) != 1 || out[0].Material != "saline" || out[0].MaterialType != domainMaterial.TypeConsumable {
		t.Fatalf("unexpected listing: %+v", out)
	}
}
