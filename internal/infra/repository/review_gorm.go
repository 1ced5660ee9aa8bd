package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

// DI
func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&reviews).Error
	if err != nil {
		return []model.Review{}, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) Create(ctx context.Context, review model.Review) (model.Review, error) {
	if err := r.db.WithContext(ctx).Create(&review).Error; err != nil {
		return model.Review{}, err
	}
	return review, nil
}
