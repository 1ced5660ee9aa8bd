package model

import "time"

type Product struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`

	//セール価格（未設定ならPriceが有効価格）
	DiscountPrice      *float64 `json:"discountPrice,omitempty"`
	DiscountPercentage *int64   `json:"discountPercentage,omitempty"`

	//Rating / ReviewCountはレビュー集計から導出。クライアントからは設定不可
	Rating      float64 `gorm:"not null;default:0" json:"rating"`
	ReviewCount int64   `gorm:"not null;default:0" json:"reviewCount"`

	Stock    int64  `gorm:"not null;default:0" json:"stock"`
	Brand    string `gorm:"type:varchar(255)" json:"brand"`
	Category string `gorm:"type:varchar(255);not null;index" json:"category"`

	Thumbnail string   `gorm:"type:text" json:"thumbnail"`
	Images    []string `gorm:"serializer:json;type:text" json:"images"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}

// 注文合計とスナップショットに使う有効価格
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		return *p.DiscountPrice
	}
	return p.Price
}
