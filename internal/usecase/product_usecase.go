package usecase

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GET /api/productsの入力DTO
type ListProductsInput struct {
	Limit    int
	Category string
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	if in.Limit < 0 {
		return []model.Product{}, newValidationError("Invalid limit")
	}

	products, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Limit:    in.Limit,
		Category: strings.TrimSpace(in.Category),
	})
	if err != nil {
		return []model.Product{}, newInternalError()
	}
	return products, nil
}

func (u *ProductUsecase) ListProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if strings.TrimSpace(category) == "" {
		return []model.Product{}, newValidationError("Invalid category")
	}

	products, err := u.productRepo.ListByCategory(ctx, category)
	if err != nil {
		return []model.Product{}, newInternalError()
	}
	return products, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, newValidationError("Invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, newNotFoundError("Product not found")
	}
	if err != nil {
		return model.Product{}, newInternalError()
	}
	return p, nil
}

// 管理画面からの商品登録・更新。
// rating/reviewCountは導出フィールドなので受け取らない
type AdminProductInput struct {
	Title              string
	Description        string
	Price              float64
	DiscountPrice      *float64
	DiscountPercentage *int64
	Stock              int64
	Brand              string
	Category           string
	Thumbnail          string
	Images             []string
}

func (in AdminProductInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return newValidationError("Title is required")
	}
	if in.Price <= 0 {
		return newValidationError("Price must be positive")
	}
	if in.DiscountPrice != nil && *in.DiscountPrice < 0 {
		return newValidationError("Discount price must be >= 0")
	}
	if in.DiscountPercentage != nil && (*in.DiscountPercentage < 0 || *in.DiscountPercentage > 100) {
		return newValidationError("Discount percentage must be between 0 and 100")
	}
	if in.Stock < 0 {
		return newValidationError("Stock must be >= 0")
	}
	if strings.TrimSpace(in.Category) == "" {
		return newValidationError("Category is required")
	}
	return nil
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, in AdminProductInput) (model.Product, error) {
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		Price:              in.Price,
		DiscountPrice:      in.DiscountPrice,
		DiscountPercentage: in.DiscountPercentage,
		Stock:              in.Stock,
		Brand:              in.Brand,
		Category:           strings.TrimSpace(in.Category),
		Thumbnail:          in.Thumbnail,
		Images:             in.Images,
	})
	if err != nil {
		return model.Product{}, newInternalError()
	}
	return p, nil
}

func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, productID int64, in AdminProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, newValidationError("Invalid product id")
	}
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:                 productID,
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		Price:              in.Price,
		DiscountPrice:      in.DiscountPrice,
		DiscountPercentage: in.DiscountPercentage,
		Stock:              in.Stock,
		Brand:              in.Brand,
		Category:           strings.TrimSpace(in.Category),
		Thumbnail:          in.Thumbnail,
		Images:             in.Images,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, newNotFoundError("Product not found")
	}
	if err != nil {
		return model.Product{}, newInternalError()
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		return model.Product{}, newInternalError()
	}
	return p, nil
}

func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return newValidationError("Invalid product id")
	}

	err := u.productRepo.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return newNotFoundError("Product not found")
	}
	if err != nil {
		return newInternalError()
	}
	return nil
}
