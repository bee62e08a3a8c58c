package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/macadden/monetary-movements-test/internal/domain"
)

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientFromDomain converts a domain client to a response.
func ClientFromDomain(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		Nombre:    c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ClientsFromDomain converts domain clients to responses.
func ClientsFromDomain(clients []*domain.Client) []*ClientResponse {
	result := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		result[i] = ClientFromDomain(c)
	}
	return result
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryFromDomain converts a domain category to a response.
func CategoryFromDomain(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Nombre:    c.Name,
		CreatedAt: c.CreatedAt,
	}
}

// CategoriesFromDomain converts domain categories to responses.
func CategoriesFromDomain(categories []*domain.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = CategoryFromDomain(c)
	}
	return result
}

// ClientCategoryResponse represents a client-category link in API responses.
type ClientCategoryResponse struct {
	ID          string    `json:"id"`
	ClienteID   string    `json:"cliente_id"`
	CategoriaID string    `json:"categoria_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClientCategoryFromDomain converts a domain link to a response.
func ClientCategoryFromDomain(link *domain.ClientCategory) *ClientCategoryResponse {
	return &ClientCategoryResponse{
		ID:          link.ID,
		ClienteID:   link.ClientID,
		CategoriaID: link.CategoryID,
		CreatedAt:   link.CreatedAt,
	}
}

// AccountResponse represents an account in API responses. Balance is never
// part of the account representation; it only exists in the report.
type AccountResponse struct {
	ID        string    `json:"id"`
	ClienteID string    `json:"cliente_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		ClienteID: a.ClientID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// MovementResponse represents a movement in API responses.
type MovementResponse struct {
	ID        string          `json:"id"`
	CuentaID  string          `json:"cuenta_id"`
	Tipo      string          `json:"tipo"`
	Importe   decimal.Decimal `json:"importe"`
	Fecha     string          `json:"fecha"`
	CreatedAt time.Time       `json:"created_at"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.Movement) *MovementResponse {
	return &MovementResponse{
		ID:        m.ID,
		CuentaID:  m.AccountID,
		Tipo:      string(m.Kind),
		Importe:   m.Amount,
		Fecha:     m.Date.Format(DateLayout),
		CreatedAt: m.CreatedAt,
	}
}

// MovementsFromDomain converts domain movements to responses.
func MovementsFromDomain(movements []*domain.Movement) []*MovementResponse {
	result := make([]*MovementResponse, len(movements))
	for i, m := range movements {
		result[i] = MovementFromDomain(m)
	}
	return result
}

// AccountBalanceRow is one per-account line of the balance report.
type AccountBalanceRow struct {
	CuentaID string          `json:"cuenta_id"`
	Saldo    decimal.Decimal `json:"saldo"`
}

// AccountData is the account snapshot embedded in the balance report.
type AccountData struct {
	ID        string           `json:"id"`
	ClienteID string           `json:"cliente_id"`
	Saldo     decimal.Decimal  `json:"saldo"`
	SaldoUSD  *decimal.Decimal `json:"saldo_usd"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// BalanceReportResponse represents the balance report. SaldoUSD is null
// when the exchange rate source was unavailable.
type BalanceReportResponse struct {
	SaldoMovimientos []AccountBalanceRow `json:"saldo_movimientos"`
	SaldoUSD         *decimal.Decimal    `json:"saldo_usd"`
	CuentaData       AccountData         `json:"cuenta_data"`
}

// BalanceReportFromDomain converts a domain balance report to a response.
func BalanceReportFromDomain(r *domain.BalanceReport) *BalanceReportResponse {
	return &BalanceReportResponse{
		SaldoMovimientos: []AccountBalanceRow{
			{CuentaID: r.Account.ID, Saldo: r.LocalBalance},
		},
		SaldoUSD: r.USDBalance,
		CuentaData: AccountData{
			ID:        r.Account.ID,
			ClienteID: r.Account.ClientID,
			Saldo:     r.LocalBalance,
			SaldoUSD:  r.USDBalance,
			CreatedAt: r.Account.CreatedAt,
			UpdatedAt: r.Account.UpdatedAt,
		},
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
