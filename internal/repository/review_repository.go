package repository

import (
	"context"

	"app/internal/domain/model"
)

type ReviewRepository interface {
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	Create(ctx context.Context, review model.Review) (model.Review, error)
}
