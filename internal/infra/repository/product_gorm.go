package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// カテゴリ絞り込み＋件数上限つきの一覧
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	if err := tx.Order("id asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"title":               p.Title,
		"description":         p.Description,
		"price":               p.Price,
		"discount_price":      p.DiscountPrice,
		"discount_percentage": p.DiscountPercentage,
		"stock":               p.Stock,
		"brand":               p.Brand,
		"category":            p.Category,
		"thumbnail":           p.Thumbnail,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, productID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, productID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 導出フィールドの書き戻し。rating/review_count以外は触らない
func (r *ProductGormRepository) UpdateRating(ctx context.Context, productID int64, rating float64, reviewCount int64) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", productID).Updates(map[string]interface{}{
		"rating":       rating,
		"review_count": reviewCount,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
