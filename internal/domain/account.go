package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a client's ledger account. It carries no balance column;
// the balance is always derived from the account's movements at query time.
type Account struct {
	ID        string
	ClientID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateEgreso checks the solvency gate: an Egreso is accepted only if
// it does not drive the balance negative. Spending the exact balance is
// allowed.
func ValidateEgreso(balance, amount decimal.Decimal) error {
	if amount.GreaterThan(balance) {
		return ErrInsufficientFunds
	}

	return nil
}
