package model

import "time"

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`

	//bcryptハッシュを保存（平文は保存しない）
	Password string `gorm:"type:varchar(255);not null" json:"-"`

	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone string `gorm:"type:varchar(30)" json:"phone,omitempty"`

	//管理画面へのアクセス可否
	IsAdmin bool `gorm:"not null;default:false" json:"isAdmin"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}

// レスポンス用にパスワードを落としたコピーを返す
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
