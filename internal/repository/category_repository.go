package repository

import (
	"context"

	"app/internal/domain/model"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, categoryID int64) (model.Category, error)
	Create(ctx context.Context, category model.Category) (model.Category, error)
}
