package model

import "time"

// 同一ユーザーが同じ商品に複数レビューを書けてしまうが、
// 既存挙動として維持する（テストで固定済み）
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"userId"`
	ProductID int64     `gorm:"not null;index" json:"productId"`
	Rating    int64     `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}
