package integration

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	postgresRepo "github.com/macadden/monetary-movements-test/internal/adapter/repository/postgres"
	"github.com/macadden/monetary-movements-test/internal/domain"
	"github.com/macadden/monetary-movements-test/internal/usecase"
	"github.com/macadden/monetary-movements-test/tests/testutil"
)

func newMovementUseCase(db *testutil.TestDB) *usecase.MovementUseCase {
	txManager := postgresRepo.NewTxManager(db.Pool)
	accountRepo := postgresRepo.NewAccountRepository(db.Pool)
	movementRepo := postgresRepo.NewMovementRepository(db.Pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	return usecase.NewMovementUseCase(txManager, accountRepo, movementRepo, idGen, retrier)
}

func TestSolvencyGate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.NewTestDB(t)
	defer db.Cleanup()

	ctx := context.Background()
	db.TruncateAll(ctx)

	client := db.CreateTestClient(ctx, "Cliente Uno")
	account := db.CreateTestAccount(ctx, client.ID)

	uc := newMovementUseCase(db)
	movementRepo := postgresRepo.NewMovementRepository(db.Pool)

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.RecordMovement(ctx, usecase.RecordMovementInput{
		AccountID: account.ID,
		Kind:      domain.MovementIngreso,
		Amount:    decimal.NewFromFloat(100.50),
		Date:      date,
	})
	if err != nil {
		t.Fatalf("failed to record Ingreso: %v", err)
	}

	t.Run("egreso over balance rejected", func(t *testing.T) {
		_, err := uc.RecordMovement(ctx, usecase.RecordMovementInput{
			AccountID: account.ID,
			Kind:      domain.MovementEgreso,
			Amount:    decimal.NewFromFloat(150.00),
			Date:      date,
		})
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}

		balance, err := movementRepo.SumByAccount(ctx, account.ID)
		if err != nil {
			t.Fatalf("failed to derive balance: %v", err)
		}
		if !balance.Equal(decimal.NewFromFloat(100.50)) {
			t.Fatalf("balance changed after rejected Egreso: %s", balance)
		}
	})

	t.Run("egreso equal to balance accepted", func(t *testing.T) {
		_, err := uc.RecordMovement(ctx, usecase.RecordMovementInput{
			AccountID: account.ID,
			Kind:      domain.MovementEgreso,
			Amount:    decimal.NewFromFloat(100.50),
			Date:      date,
		})
		if err != nil {
			t.Fatalf("Egreso equal to balance should be accepted: %v", err)
		}

		balance, err := movementRepo.SumByAccount(ctx, account.ID)
		if err != nil {
			t.Fatalf("failed to derive balance: %v", err)
		}
		if !balance.IsZero() {
			t.Fatalf("expected zero balance after full Egreso, got %s", balance)
		}
	})

	t.Run("egreso on empty account rejected", func(t *testing.T) {
		_, err := uc.RecordMovement(ctx, usecase.RecordMovementInput{
			AccountID: account.ID,
			Kind:      domain.MovementEgreso,
			Amount:    decimal.NewFromFloat(0.01),
			Date:      date,
		})
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}
	})
}

func TestConcurrentEgresos(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.NewTestDB(t)
	defer db.Cleanup()

	ctx := context.Background()
	db.TruncateAll(ctx)

	client := db.CreateTestClient(ctx, "Cliente Concurrente")
	account := db.CreateTestAccount(ctx, client.ID)

	uc := newMovementUseCase(db)
	movementRepo := postgresRepo.NewMovementRepository(db.Pool)

	initial := decimal.NewFromInt(500)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	db.SeedMovement(ctx, account.ID, domain.MovementIngreso, initial, date)

	// Every goroutine tries to spend the full balance. The account lock
	// must let exactly one through.
	const goroutines = 20

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		rejected  atomic.Int32
	)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := uc.RecordMovement(ctx, usecase.RecordMovementInput{
				AccountID: account.ID,
				Kind:      domain.MovementEgreso,
				Amount:    initial,
				Date:      date,
			})
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, domain.ErrInsufficientFunds):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	if got := successes.Load(); got != 1 {
		t.Fatalf("expected exactly 1 successful Egreso, got %d", got)
	}
	if got := rejected.Load(); got != goroutines-1 {
		t.Fatalf("expected %d rejected Egresos, got %d", goroutines-1, got)
	}

	balance, err := movementRepo.SumByAccount(ctx, account.ID)
	if err != nil {
		t.Fatalf("failed to derive balance: %v", err)
	}
	if !balance.IsZero() {
		t.Fatalf("expected zero final balance, got %s", balance)
	}
}

func TestListMovementsPagination(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := testutil.NewTestDB(t)
	defer db.Cleanup()

	ctx := context.Background()
	db.TruncateAll(ctx)

	client := db.CreateTestClient(ctx, "Cliente Paginado")
	account := db.CreateTestAccount(ctx, client.ID)

	uc := newMovementUseCase(db)

	for day := 1; day <= 5; day++ {
		date := time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
		db.SeedMovement(ctx, account.ID, domain.MovementIngreso, decimal.NewFromInt(int64(day)), date)
	}

	page1, err := uc.ListMovements(ctx, usecase.ListMovementsInput{
		AccountID: account.ID,
		Limit:     3,
		Offset:    0,
	})
	if err != nil {
		t.Fatalf("failed to list movements: %v", err)
	}
	if len(page1) != 3 {
		t.Fatalf("expected 3 movements on first page, got %d", len(page1))
	}

	// Newest first.
	if !page1[0].Date.After(page1[2].Date) {
		t.Fatalf("expected descending date order, got %v then %v", page1[0].Date, page1[2].Date)
	}

	page2, err := uc.ListMovements(ctx, usecase.ListMovementsInput{
		AccountID: account.ID,
		Limit:     3,
		Offset:    3,
	})
	if err != nil {
		t.Fatalf("failed to list movements: %v", err)
	}
	if len(page2) != 2 {
		t.Fatalf("expected 2 movements on second page, got %d", len(page2))
	}

	_, err = uc.ListMovements(ctx, usecase.ListMovementsInput{
		AccountID: testutil.GenerateID(),
		Limit:     3,
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
