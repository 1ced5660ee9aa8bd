package repository

import (
	"context"

	"app/internal/domain/model"
)

// 一覧検索
type ProductListQuery struct {
	//0なら無制限
	Limit int

	//空ならカテゴリ絞り込みなし
	Category string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	FindByID(ctx context.Context, productID int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, productID int64) error

	//レビュー集計の書き戻し（導出フィールドのみ）
	UpdateRating(ctx context.Context, productID int64, rating float64, reviewCount int64) error
}
