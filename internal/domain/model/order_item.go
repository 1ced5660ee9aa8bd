package model

// Priceは注文確定時点の有効価格スナップショット。
// 商品の価格が後から変わっても変化しない
type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64   `gorm:"not null;index" json:"orderId"`
	ProductID int64   `gorm:"not null;index" json:"productId"`
	Quantity  int64   `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}
