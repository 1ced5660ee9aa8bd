package model

import "time"

// 1ユーザーにつきカートは1つ（user_idにユニーク制約）
type Cart struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex" json:"userId"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}
