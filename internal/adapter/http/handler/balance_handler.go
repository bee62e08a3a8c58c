package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/macadden/monetary-movements-test/internal/adapter/http/dto"
	"github.com/macadden/monetary-movements-test/internal/domain"
)

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	BuildReport(ctx context.Context, clientID string) (*domain.BalanceReport, error)
}

// BalanceHandler serves the client balance report.
type BalanceHandler struct {
	balanceUC BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// Report returns the balance report for a client. An unavailable exchange
// rate does not fail the request; saldo_usd comes back null.
func (h *BalanceHandler) Report(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	report, err := h.balanceUC.BuildReport(r.Context(), clientID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build balance report", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceReportFromDomain(report))
}
