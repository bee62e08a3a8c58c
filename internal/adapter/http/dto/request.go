package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/macadden/monetary-movements-test/internal/domain"
	"github.com/macadden/monetary-movements-test/internal/usecase"
)

// DateLayout is the wire format for movement dates.
const DateLayout = "2006-01-02"

// CreateClientRequest represents a request to create a client.
type CreateClientRequest struct {
	Nombre string `json:"nombre"`
}

// UpdateClientRequest represents a request to rename a client.
type UpdateClientRequest struct {
	Nombre string `json:"nombre"`
}

// CreateCategoryRequest represents a request to create a category.
type CreateCategoryRequest struct {
	Nombre string `json:"nombre"`
}

// AssignCategoryRequest represents a request to add a client to a category.
type AssignCategoryRequest struct {
	CategoriaID string `json:"categoria_id"`
}

// CreateAccountRequest represents a request to open an account.
type CreateAccountRequest struct {
	ClienteID string `json:"cliente_id"`
}

// CreateMovementRequest represents a request to record a movement.
type CreateMovementRequest struct {
	CuentaID string          `json:"cuenta_id"`
	Tipo     string          `json:"tipo"`
	Importe  decimal.Decimal `json:"importe"`
	Fecha    string          `json:"fecha"`
}

// ToUseCaseInput converts to use case input. The date must be YYYY-MM-DD.
func (r *CreateMovementRequest) ToUseCaseInput() (usecase.RecordMovementInput, error) {
	fecha, err := time.Parse(DateLayout, r.Fecha)
	if err != nil {
		return usecase.RecordMovementInput{}, fmt.Errorf("%w: fecha must be %s", domain.ErrInvalidDate, DateLayout)
	}

	return usecase.RecordMovementInput{
		AccountID: r.CuentaID,
		Kind:      domain.MovementKind(r.Tipo),
		Amount:    r.Importe,
		Date:      fecha,
	}, nil
}
