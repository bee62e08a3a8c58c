package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidName      = errors.New("invalid name")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidPrecision = errors.New("amount supports at most two decimal places")
	ErrAmountTooLarge   = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxNameLength = 100
	MinNameLength = 1

	// Matches the NUMERIC(12,2) column.
	MaxMovementAmount = "9999999999.99"
)

// ValidateName validates a client or category display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateAmount validates a movement amount: strictly positive, at most
// two decimal places, within the storable range.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !amount.Truncate(2).Equal(amount) {
		return ErrInvalidPrecision
	}

	maxAmount, _ := decimal.NewFromString(MaxMovementAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxMovementAmount)
	}

	return nil
}

// ValidateMovementKind validates the movement kind.
func ValidateMovementKind(kind MovementKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidMovementKind, string(kind))
	}

	return nil
}

// ValidateMovementDate rejects zero dates.
func ValidateMovementDate(date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	return nil
}

// ValidatePagination clamps pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const (
		maxPageSize     = 100
		defaultPageSize = 20
	)

	if limit <= 0 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
