package usecase

import (
	"context"
	"time"

	"github.com/macadden/monetary-movements-test/internal/domain"
)

// ClientUseCase handles client business logic.
type ClientUseCase struct {
	clientRepo   ClientRepository
	categoryRepo CategoryRepository
	idGen        IDGenerator
}

// NewClientUseCase creates a new ClientUseCase.
func NewClientUseCase(clientRepo ClientRepository, categoryRepo CategoryRepository, idGen IDGenerator) *ClientUseCase {
	return &ClientUseCase{
		clientRepo:   clientRepo,
		categoryRepo: categoryRepo,
		idGen:        idGen,
	}
}

// CreateClient creates a new client.
func (uc *ClientUseCase) CreateClient(ctx context.Context, name string) (*domain.Client, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	client := &domain.Client{
		ID:        uc.idGen.Generate(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetClient retrieves a client by ID.
func (uc *ClientUseCase) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return uc.clientRepo.GetByID(ctx, id)
}

// ListClientsInput represents input for listing clients.
type ListClientsInput struct {
	Limit  int
	Offset int
}

// ListClients lists clients with pagination.
func (uc *ClientUseCase) ListClients(ctx context.Context, input ListClientsInput) ([]*domain.Client, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.clientRepo.List(ctx, limit, offset)
}

// RenameClient updates a client's display name.
func (uc *ClientUseCase) RenameClient(ctx context.Context, id, name string) (*domain.Client, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := uc.clientRepo.UpdateName(ctx, client.ID, name, now); err != nil {
		return nil, err
	}

	client.Name = name
	client.UpdatedAt = now

	return client, nil
}

// DeleteClient deletes a client. The schema cascades the delete to the
// client's accounts and their movements.
func (uc *ClientUseCase) DeleteClient(ctx context.Context, id string) error {
	if _, err := uc.clientRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.clientRepo.Delete(ctx, id)
}

// AssignCategory adds a client to a category.
func (uc *ClientUseCase) AssignCategory(ctx context.Context, clientID, categoryID string) (*domain.ClientCategory, error) {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	link := &domain.ClientCategory{
		ID:         uc.idGen.Generate(),
		ClientID:   client.ID,
		CategoryID: category.ID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.clientRepo.AddCategory(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

// ListCategories lists the categories a client belongs to.
func (uc *ClientUseCase) ListCategories(ctx context.Context, clientID string) ([]*domain.Category, error) {
	if _, err := uc.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	return uc.clientRepo.ListCategories(ctx, clientID)
}
