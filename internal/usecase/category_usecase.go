package usecase

import (
	"context"
	"time"

	"github.com/macadden/monetary-movements-test/internal/domain"
)

// CategoryUseCase handles category business logic.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	idGen        IDGenerator
}

// NewCategoryUseCase creates a new CategoryUseCase.
func NewCategoryUseCase(categoryRepo CategoryRepository, idGen IDGenerator) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		idGen:        idGen,
	}
}

// CreateCategory creates a new category.
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:        uc.idGen.Generate(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory retrieves a category by ID.
func (uc *CategoryUseCase) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

// ListCategoriesInput represents input for listing categories.
type ListCategoriesInput struct {
	Limit  int
	Offset int
}

// ListCategories lists categories with pagination.
func (uc *CategoryUseCase) ListCategories(ctx context.Context, input ListCategoriesInput) ([]*domain.Category, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.categoryRepo.List(ctx, limit, offset)
}

// DeleteCategory deletes a category.
func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.categoryRepo.Delete(ctx, id)
}
