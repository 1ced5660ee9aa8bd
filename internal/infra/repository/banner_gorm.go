package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type BannerGormRepository struct {
	db *gorm.DB
}

// DI
func NewBannerGormRepository(db *gorm.DB) *BannerGormRepository {
	return &BannerGormRepository{db: db}
}

func (r *BannerGormRepository) ListActive(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id asc").
		Find(&banners).Error
	if err != nil {
		return []model.Banner{}, err
	}
	return banners, nil
}

func (r *BannerGormRepository) Create(ctx context.Context, banner model.Banner) (model.Banner, error) {
	if err := r.db.WithContext(ctx).Create(&banner).Error; err != nil {
		return model.Banner{}, err
	}
	return banner, nil
}
