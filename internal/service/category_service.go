package service

import (
	"context"

	"github.com/azor-ahai1/SwapSpace/internal/domain"
	"github.com/azor-ahai1/SwapSpace/internal/repository"
	"github.com/azor-ahai1/SwapSpace/pkg/errs"
)

type CategoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
}

func CreateCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

// CreateOrGetCategory resolves a category by its normalized name, creating
// it on first use. Two concurrent creators race on the unique name index;
// the loser re-reads the winner's document.
func (s *CategoryServiceImpl) CreateOrGetCategory(ctx context.Context, name string) (category domain.Category, err error) {
	formattedName := domain.NormalizeCategoryName(name)
	if formattedName == "" {
		return category, errs.ErrClient
	}

	category, err = s.categoryRepo.GetCategoryByName(ctx, formattedName)
	if err != nil {
		return
	}
	if !category.ID.IsZero() {
		return category, nil
	}

	category.Name = formattedName
	id, err := s.categoryRepo.AddCategory(ctx, category)
	if err == errs.ErrConflict {
		return s.categoryRepo.GetCategoryByName(ctx, formattedName)
	}
	if err != nil {
		return
	}

	category.ID = id
	return category, nil
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (categories []repository.CategoryCountView, err error) {
	return s.categoryRepo.GetCategoriesWithProductCount(ctx)
}
