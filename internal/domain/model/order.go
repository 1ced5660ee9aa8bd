package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// 注文は作成後不変。statusだけが遷移する
type Order struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64 `gorm:"not null;index" json:"userId"`
	AddressID int64 `gorm:"not null" json:"addressId"`

	//サーバーが計算した合計。クライアントの値は使わない
	TotalAmount float64 `gorm:"not null" json:"totalAmount"`

	Status        OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentMethod string      `gorm:"type:varchar(50);not null" json:"paymentMethod"`

	IdempotencyKey string `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}
