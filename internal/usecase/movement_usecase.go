package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/macadden/monetary-movements-test/internal/domain"
)

// MovementUseCase handles the solvency-gated movement write path.
type MovementUseCase struct {
	txManager    TransactionManager
	accountRepo  AccountRepository
	movementRepo MovementRepository
	idGen        IDGenerator
	retrier      Retrier
}

// NewMovementUseCase creates a new MovementUseCase.
func NewMovementUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	movementRepo MovementRepository,
	idGen IDGenerator,
	retrier Retrier,
) *MovementUseCase {
	return &MovementUseCase{
		txManager:    txManager,
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		idGen:        idGen,
		retrier:      retrier,
	}
}

// RecordMovementInput represents input for recording a movement.
type RecordMovementInput struct {
	AccountID string
	Kind      domain.MovementKind
	Amount    decimal.Decimal
	Date      time.Time
}

// RecordMovement records a movement against an account. An Ingreso is
// appended unconditionally. An Egreso is checked against the balance of
// the movements persisted before this write; the account row is locked
// for the whole check-then-append sequence so two concurrent Egresos
// cannot both pass against a stale balance. Transient storage conflicts
// are retried.
func (uc *MovementUseCase) RecordMovement(ctx context.Context, input RecordMovementInput) (*domain.Movement, error) {
	if err := domain.ValidateMovementKind(input.Kind); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateMovementDate(input.Date); err != nil {
		return nil, err
	}

	var movement *domain.Movement

	operation := func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
		if err != nil {
			return err
		}

		if input.Kind == domain.MovementEgreso {
			balance, err := uc.movementRepo.SumByAccountTx(ctx, tx, account.ID)
			if err != nil {
				return err
			}

			if err := domain.ValidateEgreso(balance, input.Amount); err != nil {
				return err
			}
		}

		m := &domain.Movement{
			ID:        uc.idGen.Generate(),
			AccountID: account.ID,
			Kind:      input.Kind,
			Amount:    input.Amount,
			Date:      input.Date,
			CreatedAt: time.Now().UTC(),
		}

		if err := uc.movementRepo.Create(ctx, tx, m); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		movement = m

		return nil
	}

	if err := uc.retrier.Retry(ctx, operation); err != nil {
		return nil, err
	}

	return movement, nil
}

// ListMovementsInput represents input for listing movements.
type ListMovementsInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListMovements lists movements for an account.
func (uc *MovementUseCase) ListMovements(ctx context.Context, input ListMovementsInput) ([]*domain.Movement, error) {
	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.movementRepo.ListByAccount(ctx, input.AccountID, limit, offset)
}
