package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/macadden/monetary-movements-test/internal/adapter/http/dto"
	"github.com/macadden/monetary-movements-test/internal/domain"
	"github.com/macadden/monetary-movements-test/internal/usecase"
)

// ClientService defines the behavior needed by ClientHandler.
type ClientService interface {
	CreateClient(ctx context.Context, name string) (*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	ListClients(ctx context.Context, input usecase.ListClientsInput) ([]*domain.Client, error)
	RenameClient(ctx context.Context, id, name string) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
	AssignCategory(ctx context.Context, clientID, categoryID string) (*domain.ClientCategory, error)
	ListCategories(ctx context.Context, clientID string) ([]*domain.Category, error)
}

// ClientHandler handles client-related HTTP requests.
type ClientHandler struct {
	clientUC ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientUC ClientService) *ClientHandler {
	return &ClientHandler{clientUC: clientUC}
}

// Create creates a new client.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	client, err := h.clientUC.CreateClient(r.Context(), req.Nombre)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create client", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ClientFromDomain(client))
}

// Get retrieves a client by ID.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	client, err := h.clientUC.GetClient(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get client", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ClientFromDomain(client))
}

// List lists clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	clients, err := h.clientUC.ListClients(r.Context(), usecase.ListClientsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list clients", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ClientsFromDomain(clients))
}

// Update renames a client.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	var req dto.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	client, err := h.clientUC.RenameClient(r.Context(), id, req.Nombre)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update client", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ClientFromDomain(client))
}

// Delete deletes a client.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	if err := h.clientUC.DeleteClient(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete client", err.Error())

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AssignCategory adds the client to a category.
func (h *ClientHandler) AssignCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	var req dto.AssignCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	link, err := h.clientUC.AssignCategory(r.Context(), id, req.CategoriaID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to assign category", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ClientCategoryFromDomain(link))
}

// ListCategories lists the categories a client belongs to.
func (h *ClientHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing client ID", "")
		return
	}

	categories, err := h.clientUC.ListCategories(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list categories", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(categories))
}
