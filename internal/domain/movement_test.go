package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mov(kind MovementKind, amount string) *Movement {
	d, _ := decimal.NewFromString(amount)
	return &Movement{Kind: kind, Amount: d}
}

func TestBalanceOf(t *testing.T) {
	tests := []struct {
		name      string
		movements []*Movement
		expected  string
	}{
		{
			name:      "empty set is zero",
			movements: nil,
			expected:  "0",
		},
		{
			name: "incomes add up",
			movements: []*Movement{
				mov(MovementIngreso, "100.50"),
				mov(MovementIngreso, "49.50"),
			},
			expected: "150",
		},
		{
			name: "expenses subtract",
			movements: []*Movement{
				mov(MovementIngreso, "100"),
				mov(MovementEgreso, "30.25"),
			},
			expected: "69.75",
		},
		{
			name: "cent amounts do not drift",
			movements: []*Movement{
				mov(MovementIngreso, "0.10"),
				mov(MovementIngreso, "0.20"),
				mov(MovementEgreso, "0.30"),
			},
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected, _ := decimal.NewFromString(tt.expected)

			got := BalanceOf(tt.movements)
			if !got.Equal(expected) {
				t.Errorf("expected balance %s, got %s", expected, got)
			}
		})
	}
}

func TestBalanceOf_OrderIndependent(t *testing.T) {
	forward := []*Movement{
		mov(MovementIngreso, "200"),
		mov(MovementEgreso, "75.33"),
		mov(MovementIngreso, "10.01"),
		mov(MovementEgreso, "0.68"),
	}

	reversed := make([]*Movement, len(forward))
	for i, m := range forward {
		reversed[len(forward)-1-i] = m
	}

	if !BalanceOf(forward).Equal(BalanceOf(reversed)) {
		t.Errorf("expected same balance regardless of order, got %s and %s",
			BalanceOf(forward), BalanceOf(reversed))
	}
}

func TestMovement_Signed(t *testing.T) {
	ingreso := mov(MovementIngreso, "50")
	if !ingreso.Signed().Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected 50, got %s", ingreso.Signed())
	}

	egreso := mov(MovementEgreso, "50")
	if !egreso.Signed().Equal(decimal.NewFromInt(-50)) {
		t.Errorf("expected -50, got %s", egreso.Signed())
	}
}

func TestMovementKind_Valid(t *testing.T) {
	if !MovementIngreso.Valid() || !MovementEgreso.Valid() {
		t.Error("expected known kinds to be valid")
	}

	if MovementKind("Transferencia").Valid() {
		t.Error("expected unknown kind to be invalid")
	}
}
