package model

// トップページのバナー。公開APIはactive=trueのみ返す
type Banner struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Image  string `gorm:"type:text;not null" json:"image"`
	Link   string `gorm:"type:text;not null" json:"link"`
	Active bool   `gorm:"not null;default:true" json:"active"`
}
