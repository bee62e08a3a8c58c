package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind is the type of a movement. The values are stored and
// serialized verbatim to match the existing API contract.
type MovementKind string

const (
	MovementIngreso MovementKind = "Ingreso"
	MovementEgreso  MovementKind = "Egreso"
)

// Valid reports whether the kind is one of the known values.
func (k MovementKind) Valid() bool {
	return k == MovementIngreso || k == MovementEgreso
}

// Movement is a dated, typed monetary record attached to an account.
// Movements are immutable once created.
type Movement struct {
	ID        string
	AccountID string
	Kind      MovementKind
	Amount    decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
}

// Signed returns the amount with the sign implied by the kind: positive
// for Ingreso, negative for Egreso.
func (m *Movement) Signed() decimal.Decimal {
	if m.Kind == MovementEgreso {
		return m.Amount.Neg()
	}

	return m.Amount
}

// BalanceOf aggregates movements into a balance. The aggregation is
// commutative, so insertion order does not matter. An empty set yields zero.
func BalanceOf(movements []*Movement) decimal.Decimal {
	balance := decimal.Zero
	for _, m := range movements {
		balance = balance.Add(m.Signed())
	}

	return balance
}
