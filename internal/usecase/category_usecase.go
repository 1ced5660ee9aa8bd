package usecase

import (
	"context"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

func (u *CategoryUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return []model.Category{}, newInternalError()
	}
	return categories, nil
}

type AdminCategoryInput struct {
	Name  string
	Image string
}

func (u *CategoryUsecase) AdminCreateCategory(ctx context.Context, in AdminCategoryInput) (model.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, newValidationError("Name is required")
	}
	if strings.TrimSpace(in.Image) == "" {
		return model.Category{}, newValidationError("Image is required")
	}

	c, err := u.categoryRepo.Create(ctx, model.Category{
		Name:  strings.TrimSpace(in.Name),
		Image: in.Image,
	})
	if err != nil {
		return model.Category{}, newInternalError()
	}
	return c, nil
}
