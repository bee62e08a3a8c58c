package domain

import "github.com/shopspring/decimal"

// BalanceReport is the cross-account balance view for a client. USDBalance
// and BuyRate are nil when the exchange rate source was unavailable; the
// local balance remains meaningful on its own.
type BalanceReport struct {
	Client       *Client
	Account      *Account
	LocalBalance decimal.Decimal
	BuyRate      *decimal.Decimal
	USDBalance   *decimal.Decimal
}
