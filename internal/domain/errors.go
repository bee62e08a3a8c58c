package domain

import "errors"

var (
	// Entity lookup errors
	ErrClientNotFound   = errors.New("client not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrMovementNotFound = errors.New("movement not found")

	// Movement errors. ErrInsufficientFunds carries the exact sentence the
	// UI shows, do not reword it.
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidMovementKind = errors.New("movement kind must be Ingreso or Egreso")
	ErrInsufficientFunds   = errors.New("Saldo insuficiente para realizar el movimiento")

	// Exchange rate errors
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)
