package model

import "time"

// カートの明細
// 同一(cart_id, product_id)は1行に数量加算でマージする
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64     `gorm:"not null;index;uniqueIndex:idx_cart_product" json:"cartId"`
	ProductID int64     `gorm:"not null;index;uniqueIndex:idx_cart_product" json:"productId"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}
