package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/macadden/monetary-movements-test/internal/domain"
)

// BalanceUseCase assembles the balance report for a client.
type BalanceUseCase struct {
	clientRepo   ClientRepository
	accountRepo  AccountRepository
	movementRepo MovementRepository
	rates        RateProvider
	quoteName    string
}

// NewBalanceUseCase creates a new BalanceUseCase. quoteName is the display
// name of the quote to convert with, e.g. "Dolar Bolsa".
func NewBalanceUseCase(
	clientRepo ClientRepository,
	accountRepo AccountRepository,
	movementRepo MovementRepository,
	rates RateProvider,
	quoteName string,
) *BalanceUseCase {
	return &BalanceUseCase{
		clientRepo:   clientRepo,
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		rates:        rates,
		quoteName:    quoteName,
	}
}

// BuildReport resolves the client's account, derives its local balance and
// converts it with the current buy rate. A failed rate fetch does not fail
// the report: the conversion fields stay nil and the local balance stands.
// The rate fetch happens outside any account lock; this path takes none.
func (uc *BalanceUseCase) BuildReport(ctx context.Context, clientID string) (*domain.BalanceReport, error) {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.GetFirstByClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	balance, err := uc.movementRepo.SumByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceReport{
		Client:       client,
		Account:      account,
		LocalBalance: balance,
	}

	rate, err := uc.rates.FetchBuyRate(ctx, uc.quoteName)
	if err != nil {
		log.Warn().Err(err).
			Str("quote", uc.quoteName).
			Str("client_id", clientID).
			Msg("exchange rate fetch failed, reporting balance without conversion")

		return report, nil
	}

	usd := balance.Mul(rate)
	report.BuyRate = &rate
	report.USDBalance = &usd

	return report, nil
}
